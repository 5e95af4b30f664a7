// Package attest produces and verifies tamper-evident signatures over the
// canonical byte form of a record.
//
// With a signing key the signature is an HMAC-SHA256. Without one the signer
// falls back to hashing the content together with the signing time, which
// proves nothing after the fact and therefore verifies as Undecidable.
package attest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/papercomputeco/lineage/pkg/hashchain"
)

const (
	// AlgorithmHMAC is the keyed signature algorithm.
	AlgorithmHMAC = "HMAC-SHA256"

	// AlgorithmTimestamp is the unkeyed fallback. It is non-repudiation-light:
	// anyone can produce one and nobody can check one later.
	AlgorithmTimestamp = "SHA256-timestamp"
)

// ErrNilContent is returned when asked to sign nothing.
var ErrNilContent = errors.New("cannot sign nil content")

// Signature is the algorithm and hex-encoded value of a record signature.
type Signature struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

// Verification is the outcome of verifying a signature.
type Verification int

const (
	// Invalid means the signature does not match the content.
	Invalid Verification = iota

	// Valid means the signature matches the content under the given key.
	Valid

	// Undecidable means the signature cannot be checked, e.g. a timestamp
	// fallback signature whose timestamp is not reproducible.
	Undecidable
)

func (v Verification) String() string {
	switch v {
	case Valid:
		return "valid"
	case Undecidable:
		return "undecidable"
	default:
		return "invalid"
	}
}

// MarshalText encodes the verification as its name.
func (v Verification) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Signer signs canonical content. A zero Signer signs in timestamp mode.
type Signer struct {
	// Key is the HMAC key. When empty the timestamp fallback is used.
	Key []byte

	// Now is the clock used by the timestamp fallback. Defaults to time.Now.
	Now func() time.Time
}

// NewSigner returns a Signer for the given key, which may be nil.
func NewSigner(key []byte) *Signer {
	return &Signer{Key: key}
}

// Keyed reports whether the signer produces verifiable HMAC signatures.
func (s *Signer) Keyed() bool {
	return len(s.Key) > 0
}

// Sign signs content.
func (s *Signer) Sign(content any) (Signature, error) {
	if content == nil {
		return Signature{}, ErrNilContent
	}

	if s.Keyed() {
		value, err := hmacHex(s.Key, content)
		if err != nil {
			return Signature{}, err
		}
		return Signature{Algorithm: AlgorithmHMAC, Value: value}, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	value, err := hashchain.CanonicalHash(struct {
		Content   any    `json:"content"`
		Timestamp string `json:"timestamp"`
	}{
		Content:   content,
		Timestamp: now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return Signature{}, fmt.Errorf("hashing timestamped content: %w", err)
	}

	return Signature{Algorithm: AlgorithmTimestamp, Value: value}, nil
}

// Verify recomputes the expected signature of content and compares it with
// sig. Timestamp fallback signatures are always Undecidable. Unknown
// algorithms, a missing key for an HMAC signature and content that cannot be
// canonicalized are Invalid.
func Verify(content any, sig Signature, key []byte) Verification {
	switch sig.Algorithm {
	case AlgorithmTimestamp:
		return Undecidable

	case AlgorithmHMAC:
		if len(key) == 0 || content == nil {
			return Invalid
		}

		expected, err := hmacHex(key, content)
		if err != nil {
			return Invalid
		}

		if hmac.Equal([]byte(expected), []byte(sig.Value)) {
			return Valid
		}
		return Invalid

	default:
		return Invalid
	}
}

// hmacHex computes the hex HMAC-SHA256 of the canonical bytes of content.
func hmacHex(key []byte, content any) (string, error) {
	b, err := hashchain.CanonicalBytes(content)
	if err != nil {
		return "", fmt.Errorf("canonicalizing content: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(b)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
