package auth

import (
	"strings"

	"tabletop-events-api/internal/domain"
)

// Identity is what an authentication source knows about a person. Email is
// the login: an account's username, or the verified email of a provider.
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AdminFlag bool
}

// IdentityFromAccount builds the identity of a stored account. The login is
// the unique username; the contact email is user-settable and never used.
func IdentityFromAccount(a *domain.Account) Identity {
	return Identity{
		Email:     a.Username,
		Name:      strings.TrimSpace(a.DisplayName()),
		AdminFlag: a.IsAdmin,
	}
}

// AdminPolicy decides whether an identity has administrative rights.
// Reserves reports whether login may only be claimed through a verified
// identity provider, never by password signup or profile edit.
type AdminPolicy interface {
	IsAdmin(identity Identity) bool
	Reserves(login string) bool
}

// AdminPolicyFunc adapts a function to AdminPolicy. It reserves no logins.
type AdminPolicyFunc func(identity Identity) bool

func (f AdminPolicyFunc) IsAdmin(identity Identity) bool {
	return f(identity)
}

func (f AdminPolicyFunc) Reserves(string) bool {
	return false
}

type allowListPolicy struct {
	logins map[string]struct{}
}

// NewAdminPolicy grants admin to identities carrying the admin flag and to
// logins on the allow-list (case-insensitive). Allow-listed logins are
// reserved.
func NewAdminPolicy(allowList []string) AdminPolicy {
	logins := make(map[string]struct{}, len(allowList))
	for _, e := range allowList {
		if e = normalizeEmail(e); e != "" {
			logins[e] = struct{}{}
		}
	}
	return &allowListPolicy{logins: logins}
}

func (p *allowListPolicy) IsAdmin(identity Identity) bool {
	return identity.AdminFlag || p.Reserves(identity.Email)
}

func (p *allowListPolicy) Reserves(login string) bool {
	_, ok := p.logins[normalizeEmail(login)]
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Caller is the authenticated account behind a request, resolved once per
// request.
type Caller struct {
	AccountID int64
	Email     string
	IsAdmin   bool
	// SessionID is the jti of the session token, empty for other sources
	SessionID string
}

// CanModifyEvent reports whether caller may update or delete event: the
// host or an admin.
func CanModifyEvent(caller *Caller, event *domain.Event) bool {
	if caller == nil || event == nil {
		return false
	}
	return event.HostID == caller.AccountID || caller.IsAdmin
}

// CanManageAccount reports whether caller may change or remove the account
// with accountID: the owner or an admin.
func CanManageAccount(caller *Caller, accountID int64) bool {
	if caller == nil {
		return false
	}
	return caller.AccountID == accountID || caller.IsAdmin
}
