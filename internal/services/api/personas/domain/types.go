// Package domain holds persona record types independent of transport or storage
package domain

import (
	"strings"

	perr "personalab/internal/platform/errors"
)

// FallbackAuthor is stored when the caller has neither a name nor an email
const FallbackAuthor = "User"

// Caller is the resolved identity a request acts as. The zero value is anonymous
type Caller struct {
	UserID      string
	DisplayName string
	Email       string
}

// Anonymous reports whether no user is attached
func (c Caller) Anonymous() bool { return strings.TrimSpace(c.UserID) == "" }

// Author is the name recorded on records the caller creates
func (c Caller) Author() string {
	if n := strings.TrimSpace(c.DisplayName); n != "" {
		return n
	}
	if e := strings.TrimSpace(c.Email); e != "" {
		return e
	}
	return FallbackAuthor
}

// Scope selects which records List returns
type Scope string

const (
	// ScopeMine is every record the caller owns
	ScopeMine Scope = "mine"

	// ScopeCommunity is every public record
	ScopeCommunity Scope = "community"

	// ScopeAll is public records plus the caller's own
	ScopeAll Scope = "all"
)

// ParseScope reads a scope query value. Empty means all
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(strings.ToLower(strings.TrimSpace(s))); sc {
	case "":
		return ScopeAll, nil
	case ScopeMine, ScopeCommunity, ScopeAll:
		return sc, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown scope %q", s), "scope")
}
