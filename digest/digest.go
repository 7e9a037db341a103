// Package digest computes the keyed signature the gateway uses to
// authenticate a request, over the canonical parameter string.
package digest

import (
	"crypto"
	_ "crypto/sha1" //nolint:gosec // Needed since crypto.SHA1 does not actually pull in implementation; the gateway mandates SHA-1
	_ "crypto/sha256" // Needed since crypto.SHA256 does not actually pull in implementation
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var hashName = map[crypto.Hash]string{
	crypto.SHA1:   "SHA-1",
	crypto.SHA256: "SHA-256",
}

var hashID = map[string]crypto.Hash{
	"SHA-1":   crypto.SHA1,
	"SHA-256": crypto.SHA256,
}

// Algorithm identifies the fixed hash algorithm the gateway validates
// digests with. SHA-1 is the mandated default, SHA-256 is accepted for
// forward compatibility with announced gateway upgrades.
type Algorithm struct {
	crypto.Hash
}

// SHA1 is the algorithm the gateway currently mandates.
var SHA1 = Algorithm{crypto.SHA1}

// String returns the gateway identifier for the algorithm
func (a Algorithm) String() string {
	return hashName[a.Hash]
}

// MarshalText returns the marshalled algorithm identifier
func (a Algorithm) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the gateway algorithm identifier
func (a *Algorithm) UnmarshalText(text []byte) (err error) {
	hash, exists := hashID[strings.ToUpper(string(text))]
	if !exists {
		return fmt.Errorf("the digest algorithm %s is not supported", string(text))
	}
	a.Hash = hash
	return nil
}

// Signer computes the keyed digest over a canonical parameter string.
type Signer interface {
	// Sign returns the digest authenticating canonical
	Sign(canonical string) (string, error)
}

// KeyedSigner signs canonical parameter strings by appending the merchant
// secret key and hashing with a fixed algorithm. It is stateless and safe
// for concurrent use.
type KeyedSigner struct {
	alg Algorithm
	key string
}

// NewKeyedSigner creates a signer for the given algorithm and secret key
func NewKeyedSigner(alg Algorithm, key string) (*KeyedSigner, error) {
	if key == "" {
		return nil, errors.New("a secret key is required for digest signing")
	}
	if _, ok := hashName[alg.Hash]; !ok {
		return nil, errors.New("unsupported digest algorithm")
	}
	return &KeyedSigner{alg: alg, key: key}, nil
}

// Algorithm returns the fixed algorithm the signer hashes with
func (s *KeyedSigner) Algorithm() Algorithm {
	return s.alg
}

// Sign computes the hex encoded digest of canonical with the secret key
// appended as the final field. Identical inputs always produce identical
// output.
func (s *KeyedSigner) Sign(canonical string) (string, error) {
	hash := s.alg.New()
	if _, err := hash.Write([]byte(canonical + ":" + s.key)); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Verify recomputes the digest for canonical and compares it against
// expected in constant time.
func (s *KeyedSigner) Verify(canonical, expected string) bool {
	computed, err := s.Sign(canonical)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}
