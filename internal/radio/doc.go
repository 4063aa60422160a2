// Package radio provides the HTTP client for the playout server API.
//
// # Overview
//
// The package owns the transport concerns of the application: building
// requests, refusing redirects, disabling caches, and decoding the server's
// JSON envelope into typed payloads or a classified error. It is a single
// attempt abstraction with no state of its own; refresh cadence and retry
// policy live in the app package.
//
// # Envelope handling
//
// Every endpoint wraps its response in an envelope:
//
//	{"status": "ok", ...payload}
//	{"status": "error", "message": "..."}
//
// The client always attempts to decode a JSON body, including on non-2xx
// responses, because the server reports business failures (unknown file id,
// feature disabled) with an error envelope and a 4xx status. Failures are
// classified into three kinds (see errors.go):
//
//   - KindBusiness: envelope status "error"; Message carries the server text
//   - KindTransport: the request never completed
//   - KindProtocol: the body was not a decodable envelope
//
// # Endpoints
//
//   - GET  /api/now             full playout snapshot (nested "now" shape)
//   - PUT  /api/skip            skip the current clip
//   - POST /api/pause           toggle pause
//   - PUT  /api/repeat          repeat the current clip
//   - GET  /api/library/search  clip search; blank queries never hit the wire
//   - POST /api/schedule        enqueue a clip (form field "file")
//   - POST /api/schedule/news   enqueue the news clip (feature gated)
//   - POST /api/config          feature flags
//   - GET  /api/events          persistent push stream (opened here, parsed
//     by the stream package)
//
// /api/library/download is exposed only as URL construction; the binary is
// never fetched through this client.
//
// # Design notes
//
// The Client carries two http.Clients: a timed one for request/response
// calls and an untimed one for the event stream, which stays open for the
// life of the subscription. Mutating endpoints return no snapshot; callers
// observe effects through the next /api/now read.
package radio
