package authsession

// Role selects which endpoint family an operation targets.
type Role string

const (
	// RoleUser is the primary role, backed by the ant_uid marker and the
	// /api/user endpoints.
	RoleUser Role = "user"
	// RoleSys is the secondary (system) role, backed by the ant_uid_sys
	// marker and the /api/sys endpoints.
	RoleSys Role = "sys"
)

// Platform endpoint paths. These are part of the API contract.
const (
	loginPathUser = "/api/user/login"
	loginPathSys  = "/api/sys/login"

	logoutPathUser = "/api/user/logout"
	logoutPathSys  = "/api/sys/logout"

	sessionDataPathUser = "/api/user/session_data"
	sessionDataPathSys  = "/api/sys/session_data"

	sessionUpdatePath = "/api/user/session_update"
)

// Payload is the opaque session mapping returned by the backend. No schema is
// assumed beyond what the verdict adapters locate.
type Payload map[string]any

// Verdict is the canonical outcome of remote session verification. Session is
// populated only when Authenticated is true and the backend returned a
// structured payload.
type Verdict struct {
	Authenticated bool
	Session       Payload
}

// UserInfo describes the current user as far as a single inference or
// verification call could tell. It is constructed per call and never cached.
type UserInfo struct {
	ID          string
	DisplayName string

	// Primary reports whether the identity came from the primary (user)
	// marker rather than the system one.
	Primary bool
}
