// Package auth verifies HS256 bearer tokens issued by the identity provider
package auth

import (
	"net/http"
	"strings"
	"time"

	perr "personalab/internal/platform/errors"
	pnet "personalab/internal/platform/net"
	pstrings "personalab/internal/platform/strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. Display names live under user_metadata
type Claims struct {
	Email        string       `json:"email,omitempty"`
	UserMetadata userMetadata `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

type userMetadata struct {
	FullName string `json:"full_name,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Verifier parses bearer tokens into identities
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	parser *jwt.Parser
}

// Option configures a Verifier
type Option func(*Verifier)

// WithIssuer requires the iss claim to match
func WithIssuer(iss string) Option { return func(v *Verifier) { v.issuer = iss } }

// WithLeeway tolerates clock skew on exp and nbf
func WithLeeway(d time.Duration) Option { return func(v *Verifier) { v.leeway = d } }

// NewVerifier returns a verifier for tokens signed with secret
func NewVerifier(secret string, opts ...Option) *Verifier {
	v := &Verifier{secret: []byte(pstrings.MustString(secret, "jwt secret"))}
	for _, o := range opts {
		o(v)
	}
	popts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		popts = append(popts, jwt.WithIssuer(v.issuer))
	}
	v.parser = jwt.NewParser(popts...)
	return v
}

// Parse implements the middleware auth port. A request without an
// Authorization header yields pnet.ErrNoCredentials
func (v *Verifier) Parse(r *http.Request) (pnet.Identity, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return pnet.Identity{}, pnet.ErrNoCredentials
	}
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tok) == "" {
		return pnet.Identity{}, perr.Unauthorizedf("malformed authorization header")
	}
	return v.Verify(strings.TrimSpace(tok))
}

// Verify checks signature, expiry and issuer and maps claims onto an identity
func (v *Verifier) Verify(token string) (pnet.Identity, error) {
	var c Claims
	if _, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return pnet.Identity{}, perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid token")
	}
	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return pnet.Identity{}, perr.Unauthorizedf("token has no subject")
	}
	return pnet.Identity{
		UserID: sub,
		Email:  strings.TrimSpace(c.Email),
		Name:   pstrings.FirstNonBlank(c.UserMetadata.FullName, c.UserMetadata.Name),
	}, nil
}

// Sign issues a token for id that expires after ttl. Used by the CLI and tests
func (v *Verifier) Sign(id pnet.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		Email:        id.Email,
		UserMetadata: userMetadata{FullName: id.Name},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}
