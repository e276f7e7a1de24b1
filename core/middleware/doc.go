// Package middleware groups the Fiber middleware shared by every feature.
//
// The handlers live in sub-packages:
//
//   - rayid: reuses an incoming X-Ray-ID header or generates a UUID, stores it
//     under rayid.LocalsKey and echoes it on the response. logger.WithRayID and
//     the upload ledger read it back through rayid.FromContext.
//   - auth: compares the X-API-Key header, or the code query parameter, with
//     server.api_key. An empty key turns the check off. Prefixes listed in
//     Config.Skip (the Swagger UI) are never checked.
//
// cmd/app.go registers rayid first so that requests rejected by auth still
// carry a RayID in their logs.
package middleware
