package port

import "context"

// Authorizer answers allow/deny for an (action, roles) pair against the
// fixed "blog" resource kind. A transport or protocol failure surfaces as an
// error; callers must never treat an error as an allow or a deny.
type Authorizer interface {
	IsAllowed(ctx context.Context, action string, roles []string) (bool, error)
}
