package hashchain

import "fmt"

// emptyLeaf is hashed as the root of an empty list.
const emptyLeaf = "empty"

// MerkleRoot computes the aggregate digest of an ordered list of values.
//
// Every item is hashed with CanonicalHash to form a leaf. Adjacent digests are
// then combined pairwise (CanonicalHash of their concatenation) level by level
// until one digest remains. A level with an odd number of digests duplicates
// its last one. An empty list yields CanonicalHash("empty").
func MerkleRoot[T any](items []T) (string, error) {
	if len(items) == 0 {
		return CanonicalHash(emptyLeaf)
	}

	level := make([]string, 0, len(items))
	for i, item := range items {
		leaf, err := CanonicalHash(item)
		if err != nil {
			return "", fmt.Errorf("hashing leaf %d: %w", i, err)
		}
		level = append(level, leaf)
	}

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}

			parent, err := CanonicalHash(left + right)
			if err != nil {
				return "", err
			}
			next = append(next, parent)
		}
		level = next
	}

	return level[0], nil
}
