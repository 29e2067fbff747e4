package identity

import "context"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity is the authenticated caller, resolved at the HTTP boundary and
// passed explicitly into every operation.
type Identity struct {
	UserID int64
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == 0
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type contextKey struct{}

func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, ident)
}

func FromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(Identity)
	return ident, ok
}
