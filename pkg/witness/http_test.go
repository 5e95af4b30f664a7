package witness_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage/storagetest"
	"github.com/papercomputeco/lineage/pkg/witness"
	"github.com/papercomputeco/lineage/pkg/witness/nop"
)

var _ = Describe("HTTPWitness", func() {
	var (
		ctx   context.Context
		rec   *lineage.Record
		calls atomic.Int32
	)

	BeforeEach(func() {
		ctx = context.Background()
		rec = storagetest.NewRecord(nil)
		calls.Store(0)
	})

	newWitness := func(handler http.HandlerFunc, retries int) *witness.HTTPWitness {
		server := httptest.NewServer(handler)
		DeferCleanup(server.Close)

		w, err := witness.NewHTTPWitness(witness.Config{
			Endpoint: server.URL + "/",
			Timeout:  200 * time.Millisecond,
			Retries:  retries,
			Backoff:  time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())
		return w
	}

	It("requires an endpoint", func() {
		_, err := witness.NewHTTPWitness(witness.Config{})
		Expect(err).To(MatchError(witness.ErrNoEndpoint))
	})

	It("posts the record to /attestations and returns the remote id", func() {
		w := newWitness(func(rw http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Path).To(Equal("/attestations"))
			Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))

			body, err := io.ReadAll(r.Body)
			Expect(err).NotTo(HaveOccurred())
			var posted map[string]any
			Expect(json.Unmarshal(body, &posted)).To(Succeed())
			Expect(posted).To(HaveKeyWithValue("execution_id", rec.ExecutionID))
			Expect(posted).To(HaveKeyWithValue("chain_hash", rec.ChainHash))

			rw.WriteHeader(http.StatusCreated)
			_, _ = rw.Write([]byte(`{"remote_id":"w-42"}`))
		}, 0)

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusSuccess))
		Expect(res.RemoteID).To(Equal("w-42"))
		Expect(res.Err).NotTo(HaveOccurred())
		Expect(calls.Load()).To(Equal(int32(1)))
	})

	It("treats an empty 2xx body as success without a remote id", func() {
		w := newWitness(func(rw http.ResponseWriter, _ *http.Request) {
			rw.WriteHeader(http.StatusNoContent)
		}, 0)

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusSuccess))
		Expect(res.RemoteID).To(BeEmpty())
	})

	It("does not retry 4xx responses", func() {
		w := newWitness(func(rw http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(rw, "bad record", http.StatusBadRequest)
		}, 3)

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusFailed))
		Expect(res.Err).To(MatchError(ContainSubstring("status 400")))
		Expect(calls.Load()).To(Equal(int32(1)))
	})

	It("retries 5xx responses until one succeeds", func() {
		w := newWitness(func(rw http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(rw, "unavailable", http.StatusServiceUnavailable)
				return
			}
			_, _ = rw.Write([]byte(`{"id":"w-7"}`))
		}, 2)

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusSuccess))
		Expect(res.RemoteID).To(Equal("w-7"))
		Expect(calls.Load()).To(Equal(int32(3)))
	})

	It("gives up after the configured retries", func() {
		w := newWitness(func(rw http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(rw, "down", http.StatusInternalServerError)
		}, 2)

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusFailed))
		Expect(calls.Load()).To(Equal(int32(3)))
	})

	It("fails within its budget when the witness hangs", func() {
		release := make(chan struct{})
		w := newWitness(func(_ http.ResponseWriter, r *http.Request) {
			// The server only notices a dropped client once the body is read.
			_, _ = io.Copy(io.Discard, r.Body)
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, 1)
		// Cleanups run last-in first-out: the handler must be released
		// before server.Close waits for it.
		DeferCleanup(func() { close(release) })

		start := time.Now()
		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusFailed))
		Expect(res.Err).To(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<=", w.Budget()+time.Second))
	})

	It("fails on unreachable endpoints", func() {
		w, err := witness.NewHTTPWitness(witness.Config{
			Endpoint: "http://127.0.0.1:1",
			Timeout:  100 * time.Millisecond,
			Backoff:  time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())

		res := w.Submit(ctx, rec)
		Expect(res.Status).To(Equal(witness.StatusFailed))
		Expect(res.Err).To(HaveOccurred())
	})

	It("computes its worst-case budget", func() {
		w, err := witness.NewHTTPWitness(witness.Config{
			Endpoint: "http://localhost",
			Timeout:  time.Second,
			Retries:  2,
			Backoff:  100 * time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Budget()).To(Equal(3*time.Second + 300*time.Millisecond))
	})
})

var _ = Describe("nop.Witness", func() {
	It("skips every submission", func() {
		res := nop.NewWitness().Submit(context.Background(), storagetest.NewRecord(nil))
		Expect(res.Status).To(Equal(witness.StatusSkipped))
		Expect(res.Err).NotTo(HaveOccurred())
	})
})
