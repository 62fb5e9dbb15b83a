package authsession

import "strconv"

// schemaAdapter attempts to recognize one known response shape, returning the
// normalized session payload when it matches. The verifier tries adapters in
// order and takes the first match, which keeps backend-format churn out of
// the reconciliation logic.
type schemaAdapter func(body map[string]any) (Payload, bool)

var verdictAdapters = []schemaAdapter{
	nestedUserAdapter,
	legacySessionDataAdapter,
}

// userObjectPaths are the known locations of the nested user object, in
// priority order. The first match wins.
var userObjectPaths = [][]string{
	{"Data", "User"},
	{"data", "user"},
	{"User"},
	{"user"},
}

// userIDFields are the known names of the user id field, in priority order.
var userIDFields = []string{"Id", "ID", "id", "Uid", "uid"}

// userObject locates the nested user object, returning it together with its
// enclosing object (the session payload it gets folded into).
func userObject(body map[string]any) (user, enclosing map[string]any, ok bool) {
	for _, path := range userObjectPaths {
		parent := body
		matched := true
		for _, field := range path[:len(path)-1] {
			next, isMap := parent[field].(map[string]any)
			if !isMap {
				matched = false
				break
			}
			parent = next
		}
		if !matched {
			continue
		}
		if u, isMap := parent[path[len(path)-1]].(map[string]any); isMap {
			return u, parent, true
		}
	}
	return nil, nil, false
}

func nestedUserAdapter(body map[string]any) (Payload, bool) {
	_, enclosing, ok := userObject(body)
	if !ok {
		return nil, false
	}
	return Payload(enclosing), true
}

// legacySessionDataAdapter handles the flat shape older backends return.
func legacySessionDataAdapter(body map[string]any) (Payload, bool) {
	if data, ok := body["SessionData"].(map[string]any); ok {
		return Payload(data), true
	}
	return nil, false
}

// errorIndicator returns the first non-empty error or message field. Its
// presence signals failure regardless of HTTP status.
func errorIndicator(body map[string]any) (string, bool) {
	for _, field := range []string{"error", "Error", "message", "Message"} {
		if s, ok := body[field].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// resolveUserID extracts a user id from the nested user object, accepting
// string and numeric forms.
func resolveUserID(body map[string]any) (string, bool) {
	user, _, ok := userObject(body)
	if !ok {
		return "", false
	}
	for _, field := range userIDFields {
		switch v := user[field].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}
