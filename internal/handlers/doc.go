// Package handlers implements the /api/v1 HTTP endpoints of the tracker.
//
// Handler implements v1.ServerInterface generated from api/v1/openapi.yaml and
// is mounted with:
//
//	v1.RegisterHandlersWithOptions(router, handler, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
//
// Endpoints:
//
//	┌────────┬─────────────────────────────────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint                                │ Description                              │
//	├────────┼─────────────────────────────────────────┼──────────────────────────────────────────┤
//	│ GET    │ /library[?refresh=true]                 │ Games with achievements and completion   │
//	│ POST   │ /library/refresh                        │ Drop the cache and aggregate again       │
//	│ GET    │ /library/games/{appid}/achievements     │ Merged achievements of one game          │
//	│ GET    │ /settings/credentials                   │ Steam id and masked api key              │
//	│ PUT    │ /settings/credentials                   │ Store api key and steam id               │
//	│ DELETE │ /settings/credentials                   │ Forget the credentials                   │
//	│ GET    │ /collections                            │ All collections                          │
//	│ POST   │ /collections                            │ Create (or return) a collection          │
//	│ GET    │ /collections/export                     │ Collections as an xlsx workbook          │
//	│ DELETE │ /collections/{name}                     │ Delete a collection (idempotent)         │
//	│ POST   │ /collections/{name}/entries             │ Add an achievement, creating if needed   │
//	│ DELETE │ /collections/{name}/entries/{index}     │ Remove the entry at index                │
//	└────────┴─────────────────────────────────────────┴──────────────────────────────────────────┘
//
// Errors are returned as {"error": "..."}:
//
//	┌─────────────────────────────────────────────┬────────┐
//	│ Error                                       │ Status │
//	├─────────────────────────────────────────────┼────────┤
//	│ invalid body, InvalidArgument, OutOfRange   │ 400    │
//	│ Unauthorized (proxy rejected the token/key) │ 401    │
//	│ ResourceNotFound                            │ 404    │
//	│ CredentialsMissing                          │ 412    │
//	│ NetworkFailure, MalformedResponse           │ 502    │
//	│ anything else                               │ 500    │
//	└─────────────────────────────────────────────┴────────┘
package handlers
