// Package authsession decides whether the caller holds a valid authenticated
// session against the Wemol platform, reconciling three independent signals:
// locally readable cookie markers, server-confirmed session data, and freshly
// issued credentials from an explicit login call.
//
// # Overview
//
// The Client type is the entry point. It composes an apiclient.Client (the
// HTTP transport) with a cookiestore.Store (the ambient cookie jar) and
// exposes the session operations:
//
//   - InferUser() / IsLoggedIn() – cheap, synchronous verdict from marker
//     presence alone; never a gate for privileged actions
//   - Verify() / VerifyRole() – asynchronous server verification, normalized
//     into a single Verdict; absorbs every failure into "not authenticated"
//   - Login() – credential handshake; failures are typed and inspectable
//   - Logout() – clears local markers unconditionally, then best-effort
//     server invalidation
//   - Renew() – extends the server-side session lifetime
//   - CheckLogin() / RequireAuthenticated() – the combined reconciliation
//
// # Architecture
//
// Local inference and remote verification are two distinct strategies. The
// MarkersReadable capability flag selects between them at construction: when
// the platform serves its markers HTTP-only, inference reports nothing and
// every decision flows through the server.
//
// The heterogeneous response shapes the backend may return are handled by an
// ordered list of schema adapters, each attempting one known shape; the
// verifier takes the first match. A 2xx response in which no adapter finds
// user data is not authentication.
//
// # Usage
//
//	jar := cookiestore.NewMemoryJar()
//	cookies, _ := cookiestore.New(jar)
//	api, _ := apiclient.New("https://wemol.example.com", apiclient.WithJar(jar))
//	client := authsession.New(api, cookies)
//
//	if err := client.RequireAuthenticated(ctx); err != nil {
//	    ok, err := client.Login(ctx, name, passwd, authsession.RoleUser)
//	    ...
//	}
//
// # Error Handling
//
// Two failure classes exist. User-actionable login failures surface as
// *RequestFailedError and *RejectedError, both matching the ErrLoginFailed
// sentinel via errors.Is. Ambient failures (verification, renewal, server
// logout calls) are absorbed into negative or nil results and logged through
// slog, because failing safe toward logged-out beats raising. Nothing is
// retried automatically; callers decide whether to re-invoke.
package authsession
