// Package hashchain provides the content-addressing primitives of the lineage
// chain: canonical hashing of structured values, Merkle aggregation over an
// ordered list of values, and the link hash that binds a record to its
// predecessor.
//
// All digests are hex-encoded SHA-256.
package hashchain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
)

// Genesis is the previous hash of the very first record in a chain.
const Genesis = "genesis"

// CanonicalBytes marshals v to JSON and canonicalizes it according to RFC 8785:
// object keys are sorted, insignificant whitespace is removed and numbers are
// normalized. Two semantically-equal values yield identical bytes regardless of
// how their maps were built.
//
// This, as of Go 1.25.x, requires "GOEXPERIMENT=jsonv2" for the json v2 and
// jsontext packages.
func CanonicalBytes(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling hash input: %w", err)
	}

	j := jsontext.Value(data)
	if err := j.Canonicalize(); err != nil {
		return nil, fmt.Errorf("canonicalizing hash input: %w", err)
	}

	return j, nil
}

// CanonicalHash returns the digest of the canonical JSON form of v.
func CanonicalHash(v any) (string, error) {
	b, err := CanonicalBytes(v)
	if err != nil {
		return "", err
	}

	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:]), nil
}

// ChainLink derives the hash binding a record's content hash to the hash of
// its predecessor (or Genesis).
func ChainLink(previous, current string) (string, error) {
	return CanonicalHash(previous + current)
}
