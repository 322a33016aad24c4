// Package access answers capability questions for UI gating: can the
// current session see a module, does it hold a permission.
package access

import "github.com/billmate/billmate-go/session"

// Checker evaluates capability checks against the session store. Checks
// consider the union of the identity and guest capability sets; neither
// source takes precedence.
type Checker struct {
	session *session.Store
}

// NewChecker creates a checker over the given session store.
func NewChecker(s *session.Store) *Checker {
	return &Checker{session: s}
}

// HasModuleAccess reports whether the named module is available to the
// current session.
func (c *Checker) HasModuleAccess(name string) bool {
	if id := c.session.Identity(); id != nil && contains(id.Modules, name) {
		return true
	}
	if g := c.session.Guest(); g != nil && contains(g.Modules, name) {
		return true
	}
	return false
}

// HasPermission reports whether the current session holds the named
// fine-grained permission.
func (c *Checker) HasPermission(name string) bool {
	if id := c.session.Identity(); id != nil && contains(id.Permissions, name) {
		return true
	}
	if g := c.session.Guest(); g != nil && contains(g.Permissions, name) {
		return true
	}
	return false
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
