package mail

import (
	"sync"

	emailverifier "github.com/AfterShip/email-verifier"
)

// verifier only uses the offline checks. Verify, which dials the domain's
// MX hosts, is never called.
var verifier = sync.OnceValue(emailverifier.NewVerifier)

// AddressFlags describes a reply address. Flagged addresses are still accepted.
type AddressFlags struct {
	Valid      bool
	Disposable bool
	Role       bool
	Free       bool
}

// Flagged reports whether the address is unlikely to reach a person.
func (f AddressFlags) Flagged() bool {
	return !f.Valid || f.Disposable || f.Role
}

// ClassifyAddress inspects email using the bundled domain lists.
func ClassifyAddress(email string) AddressFlags {
	v := verifier()
	syntax := v.ParseAddress(email)
	if !syntax.Valid {
		return AddressFlags{}
	}
	return AddressFlags{
		Valid:      true,
		Disposable: v.IsDisposable(syntax.Domain),
		Role:       v.IsRoleAccount(syntax.Username),
		Free:       v.IsFreeDomain(syntax.Domain),
	}
}
