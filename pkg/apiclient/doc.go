// Package apiclient is the HTTP transport for the Wemol platform API: JSON
// requests with ambient credentials, bounded timeouts and per-request IDs.
//
// # Overview
//
// A Client is bound to a base URL at construction and exposes Post, which
// accepts a request path, an optional JSON body and per-call options (query
// parameters, timeout override, credential suppression). Requests carry
// Content-Type/Accept negotiation headers and an X-Request-ID generated with
// github.com/google/uuid.
//
// When a cookiestore.Jar is attached via WithJar the client behaves like a
// browser: the jar's raw string is sent as the Cookie header on credentialed
// requests, and Set-Cookie response headers are written back into the jar so
// server-issued cookies become visible to local session inference.
//
// # Usage
//
//	jar := cookiestore.NewMemoryJar()
//	client, err := apiclient.New("https://wemol.example.com", apiclient.WithJar(jar))
//	if err != nil { log.Fatal(err) }
//
//	resp, err := client.Post(ctx, "/api/user/session_data", nil)
//
// # Error Handling
//
// Transport failures surface as errors from Post; completed exchanges always
// return a Response regardless of status code, leaving status interpretation
// to the caller. ErrInvalidBaseURL is returned at construction for unusable
// base URLs.
package apiclient
