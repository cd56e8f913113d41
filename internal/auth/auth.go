// Package auth decides which identities may run administrative mutations.
//
// Admin is a capability value: code outside this package can only obtain a
// usable one through Authorizer.Verify, so every admin-only call site is
// forced through the identity check.
package auth

import (
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

type Admin struct {
	id int64
}

// ID returns the verified admin identity.
func (a Admin) ID() int64 {
	return a.id
}

// Valid reports whether a was minted by Verify.
func (a Admin) Valid() bool {
	return a.id != 0
}

// Require returns ErrForbidden for the zero Admin.
func (a Admin) Require() error {
	if !a.Valid() {
		return fmt.Errorf("%w: admin capability required", domain.ErrForbidden)
	}
	return nil
}

type Authorizer struct {
	admins map[int64]struct{}
}

func NewAuthorizer(adminIDs []int64) *Authorizer {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id != 0 {
			admins[id] = struct{}{}
		}
	}
	return &Authorizer{admins: admins}
}

func (a *Authorizer) IsAdmin(identity int64) bool {
	_, ok := a.admins[identity]
	return ok
}

func (a *Authorizer) Verify(identity int64) (Admin, error) {
	if !a.IsAdmin(identity) {
		return Admin{}, domain.ErrForbidden
	}
	return Admin{id: identity}, nil
}

// AdminIDs lists every configured admin identity, in no particular order.
func (a *Authorizer) AdminIDs() []int64 {
	ids := make([]int64, 0, len(a.admins))
	for id := range a.admins {
		ids = append(ids, id)
	}
	return ids
}
