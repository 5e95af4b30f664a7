package hashchain_test

import (
	"crypto/sha256"
	"encoding/hex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/hashchain"
)

func sum(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

var _ = Describe("CanonicalBytes", func() {
	It("sorts object keys", func() {
		b, err := hashchain.CanonicalBytes(map[string]any{"b": 2, "a": 1, "c": map[string]any{"z": true, "y": nil}})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`{"a":1,"b":2,"c":{"y":null,"z":true}}`))
	})

	It("normalizes numbers so ints and floats agree", func() {
		a, err := hashchain.CanonicalBytes(map[string]any{"stars": 3})
		Expect(err).NotTo(HaveOccurred())
		b, err := hashchain.CanonicalBytes(map[string]any{"stars": 3.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("fails on values that cannot be marshaled", func() {
		_, err := hashchain.CanonicalBytes(map[string]any{"ch": make(chan int)})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("CanonicalHash", func() {
	It("is the sha256 of the canonical bytes", func() {
		h, err := hashchain.CanonicalHash("empty")
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(Equal(sum(`"empty"`)))
		Expect(h).To(HaveLen(64))
	})

	It("does not depend on key insertion order", func() {
		first := map[string]any{}
		first["target_id"] = "acme/widgets"
		first["status"] = "success"
		first["payload"] = map[string]any{"stars": 10, "forks": 2}

		second := map[string]any{}
		second["payload"] = map[string]any{"forks": 2, "stars": 10}
		second["status"] = "success"
		second["target_id"] = "acme/widgets"

		h1, err := hashchain.CanonicalHash(first)
		Expect(err).NotTo(HaveOccurred())
		h2, err := hashchain.CanonicalHash(second)
		Expect(err).NotTo(HaveOccurred())
		Expect(h1).To(Equal(h2))
	})

	It("hashes structs and equivalent maps identically", func() {
		type pair struct {
			B int    `json:"b"`
			A string `json:"a"`
		}
		h1, err := hashchain.CanonicalHash(pair{B: 1, A: "x"})
		Expect(err).NotTo(HaveOccurred())
		h2, err := hashchain.CanonicalHash(map[string]any{"a": "x", "b": 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(h1).To(Equal(h2))
	})

	It("changes when content changes", func() {
		h1, _ := hashchain.CanonicalHash(map[string]any{"stars": 1})
		h2, _ := hashchain.CanonicalHash(map[string]any{"stars": 2})
		Expect(h1).NotTo(Equal(h2))
	})
})

var _ = Describe("ChainLink", func() {
	It("hashes the concatenation of previous and current", func() {
		link, err := hashchain.ChainLink(hashchain.Genesis, "abc")
		Expect(err).NotTo(HaveOccurred())

		expected, err := hashchain.CanonicalHash("genesisabc")
		Expect(err).NotTo(HaveOccurred())
		Expect(link).To(Equal(expected))
	})

	It("binds a record to its predecessor", func() {
		l1, _ := hashchain.ChainLink("prev-1", "content")
		l2, _ := hashchain.ChainLink("prev-2", "content")
		Expect(l1).NotTo(Equal(l2))
	})
})
