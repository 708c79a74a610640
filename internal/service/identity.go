package service

import (
	"context"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// IdentityProvider resolves the caller of the current request.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (model.User, bool)
}

type userKey struct{}

// WithUser stamps u on ctx.
func WithUser(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// ContextIdentity reads the user stamped by WithUser.
type ContextIdentity struct{}

func (ContextIdentity) CurrentUser(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(userKey{}).(model.User)
	return u, ok && u.ID != ""
}

var _ IdentityProvider = ContextIdentity{}
