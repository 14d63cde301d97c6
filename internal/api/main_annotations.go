// @title           joe-jokes API
// @version         1.0
// @description     In-memory joke collection. Mutating endpoints require the master key.
// @BasePath        /
// @accept          x-www-form-urlencoded
// @produce         json
// @securityDefinitions.apikey MasterKey
// @in              query
// @name            key
// @description     Shared master key configured via JOKES_MASTER_KEY.
package api
