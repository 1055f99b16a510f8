// internal/ticket/ticket.go
//
// Signed puzzle tickets.
// A ticket is an HS256 JWT carrying only the inputs of a puzzle build (word
// list, grid size, seed, matching mode). Build is deterministic, so any server
// holding the secret can rebuild the exact same puzzle from a ticket. No
// selection or highlight state is ever stored in it.

package ticket

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers malformed, expired, or wrongly signed tickets.
var ErrInvalid = errors.New("ticket: invalid")

// Spec is everything needed to rebuild a puzzle.
type Spec struct {
	ID                  string   `json:"-"`
	List                string   `json:"list,omitempty"`
	Words               []string `json:"words"`
	Size                int      `json:"size"`
	Seed                uint64   `json:"seed,string"`
	MatchBothDirections bool     `json:"both,omitempty"`
}

type claims struct {
	Spec
	jwt.RegisteredClaims
}

// Issue signs spec. A missing ID gets a random one; ttl <= 0 means no expiry.
// The returned Spec carries the ID that was signed.
func Issue(secret string, spec Spec, ttl time.Duration) (string, Spec, error) {
	if spec.ID == "" {
		spec.ID = newID()
	}
	now := time.Now()
	c := claims{
		Spec: spec,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       spec.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return "", Spec{}, fmt.Errorf("ticket: sign: %w", err)
	}
	return tok, spec, nil
}

// Parse verifies tok and returns its Spec. Every failure wraps ErrInvalid.
func Parse(secret, tok string) (Spec, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tok, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !t.Valid || c.RegisteredClaims.ID == "" {
		return Spec{}, ErrInvalid
	}
	spec := c.Spec
	spec.ID = c.RegisteredClaims.ID
	return spec, nil
}

// newID returns a compact 16-hex-char identifier.
func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
