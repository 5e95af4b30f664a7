package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage/inmemory"
)

var signingKey = []byte("api-test-key")

func newTestRun(stars int) *run.Result {
	targets := []run.TargetResult{{
		TargetID:   "octo/alpha",
		Status:     run.StatusSuccess,
		StartedAt:  time.Unix(1735689600, 0).UTC(),
		DurationNs: int64(time.Millisecond),
		Payload:    map[string]any{"stars": stars},
	}}
	return &run.Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Unix(1735689600, 0).UTC(),
		Targets:   targets,
		Summary:   run.Summarize(targets),
	}
}

func get(server *Server, path string, out any) int {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	Expect(err).NotTo(HaveOccurred())

	resp, err := server.app.Test(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	if out != nil {
		Expect(json.Unmarshal(body, out)).To(Succeed(), string(body))
	}
	return resp.StatusCode
}

var _ = Describe("Server", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		server  *Server
		records []*lineage.Record
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()

		reg := prometheus.NewRegistry()
		m := metrics.New(reg)

		rec, err := recorder.New(&recorder.Config{
			Driver:  driver,
			Signer:  attest.NewSigner(signingKey),
			Metrics: m,
		})
		Expect(err).NotTo(HaveOccurred())

		records = nil
		for i := range 3 {
			r, err := rec.Record(ctx, newTestRun(i))
			Expect(err).NotTo(HaveOccurred())
			records = append(records, r)
		}

		server = NewServer(Config{ListenAddr: ":0", SigningKey: signingKey, Gatherer: reg}, driver)
	})

	Describe("GET /ping", func() {
		It("returns pong", func() {
			var body string
			Expect(get(server, "/ping", &body)).To(Equal(fiber.StatusOK))
			Expect(body).To(Equal("pong"))
		})
	})

	Describe("GET /records", func() {
		It("lists the most recent records first", func() {
			var body RecordListResponse
			Expect(get(server, "/records", &body)).To(Equal(fiber.StatusOK))
			Expect(body.Count).To(Equal(3))
			Expect(body.Records[0].ExecutionID).To(Equal(records[2].ExecutionID))
			Expect(body.Records[2].ExecutionID).To(Equal(records[0].ExecutionID))
		})

		It("honors the limit", func() {
			var body RecordListResponse
			Expect(get(server, "/records?limit=1", &body)).To(Equal(fiber.StatusOK))
			Expect(body.Count).To(Equal(1))
			Expect(body.Records[0].Sequence).To(Equal(int64(3)))
		})

		It("rejects a malformed limit", func() {
			var body ErrorResponse
			Expect(get(server, "/records?limit=abc", &body)).To(Equal(fiber.StatusBadRequest))
			Expect(body.Error).To(ContainSubstring("limit"))
		})
	})

	Describe("GET /records/:id", func() {
		It("returns the record", func() {
			var body lineage.Record
			Expect(get(server, "/records/"+records[1].ExecutionID, &body)).To(Equal(fiber.StatusOK))
			Expect(body.ChainHash).To(Equal(records[1].ChainHash))
			Expect(body.PreviousHash).To(Equal(records[0].ChainHash))
		})

		It("returns 404 for unknown ids", func() {
			var body ErrorResponse
			Expect(get(server, "/records/nope", &body)).To(Equal(fiber.StatusNotFound))
			Expect(body.Error).To(Equal("record not found"))
		})
	})

	Describe("GET /records/:id/verify", func() {
		It("reports a valid record", func() {
			var body map[string]any
			Expect(get(server, "/records/"+records[0].ExecutionID+"/verify", &body)).To(Equal(fiber.StatusOK))
			Expect(body).To(HaveKeyWithValue("signature", "valid"))
			Expect(body).To(HaveKeyWithValue("content_hash", true))
			Expect(body).To(HaveKeyWithValue("chain_link", true))
		})
	})

	Describe("GET /chain/state", func() {
		It("returns the tip of the chain", func() {
			var body ChainStateResponse
			Expect(get(server, "/chain/state", &body)).To(Equal(fiber.StatusOK))
			Expect(body.LastHash).To(Equal(records[2].ChainHash))
			Expect(body.LastSequence).To(Equal(int64(3)))
			Expect(body.LastRunID).To(Equal(records[2].RunID))
		})
	})

	Describe("GET /chain/validate", func() {
		It("reports an intact chain", func() {
			var body ValidationResponse
			Expect(get(server, "/chain/validate", &body)).To(Equal(fiber.StatusOK))
			Expect(body.Valid).To(BeTrue())
			Expect(body.Records).To(Equal(3))
		})

		It("reports a broken chain with 409", func() {
			broken := inmemory.NewDriver()
			for i, r := range records {
				c := r.Clone()
				if i == 1 {
					c.PreviousHash = "tampered"
				}
				Expect(broken.Append(ctx, c)).To(Succeed())
			}

			s := NewServer(Config{}, broken)
			var body ValidationResponse
			Expect(get(s, "/chain/validate", &body)).To(Equal(fiber.StatusConflict))
			Expect(body.Valid).To(BeFalse())
			Expect(body.Sequence).To(Equal(int64(2)))
			Expect(body.ExecutionID).To(Equal(records[1].ExecutionID))
			Expect(body.Error).To(ContainSubstring("previous hash"))
		})
	})

	Describe("GET /metrics", func() {
		It("exposes the recorder metrics", func() {
			req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring("lineage_records_total 3"))
		})
	})
})
