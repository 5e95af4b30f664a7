package render_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/cmd/lineage/render"
	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage/storagetest"
)

var _ = Describe("render", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	Describe("Result", func() {
		It("prints every target and the summary", func() {
			render.Result(buf, storagetest.Snapshot())
			out := buf.String()
			Expect(out).To(ContainSubstring("octo/alpha"))
			Expect(out).To(ContainSubstring("octo/beta"))
			Expect(out).To(ContainSubstring("boom"))
			Expect(out).To(ContainSubstring("2 total, 1 succeeded, 1 failed"))
		})

		It("truncates long errors", func() {
			result := &run.Result{
				Targets: []run.TargetResult{{
					TargetID: "octo/long",
					Status:   run.StatusFailed,
					Error:    strings.Repeat("x", 200),
				}},
			}
			render.Result(buf, result)
			Expect(buf.String()).NotTo(ContainSubstring(strings.Repeat("x", 61)))
			Expect(buf.String()).To(ContainSubstring("..."))
		})
	})

	Describe("Record", func() {
		It("prints the digests and the attestation", func() {
			rec := storagetest.NewRecord(nil)
			rec.AttestationReference = &lineage.AttestationReference{
				Status:   lineage.AttestationWitnessed,
				RemoteID: "w-1",
			}
			render.Record(buf, rec)
			out := buf.String()
			Expect(out).To(ContainSubstring(rec.ExecutionID))
			Expect(out).To(ContainSubstring(rec.ChainHash[:12]))
			Expect(out).To(ContainSubstring("witnessed (w-1)"))
			Expect(out).To(ContainSubstring("genesis"))
		})
	})

	Describe("DeltaSummary", func() {
		It("reports no changes", func() {
			Expect(render.DeltaSummary(delta.Delta{})).To(Equal("no changes"))
		})

		It("counts changes", func() {
			d := delta.Delta{
				AddedTargets:    []run.Target{"a/b", "c/d"},
				ModifiedTargets: []delta.TargetChange{{TargetID: "e/f"}},
			}
			Expect(render.DeltaSummary(d)).To(Equal("+2 -0 ~1"))
		})
	})

	Describe("Delta", func() {
		It("prints field changes", func() {
			d := delta.Delta{
				RemovedTargets: []run.Target{"octo/gone"},
				ModifiedTargets: []delta.TargetChange{{
					TargetID: "octo/alpha",
					FieldChanges: []delta.FieldChange{{
						Field:         "payload.stars",
						PreviousValue: 1,
						CurrentValue:  2,
						ChangeKind:    delta.KindIncrease,
					}},
				}},
			}
			render.Delta(buf, d)
			out := buf.String()
			Expect(out).To(ContainSubstring("- octo/gone"))
			Expect(out).To(ContainSubstring("payload.stars: 1 -> 2"))
		})
	})

	Describe("Attestation", func() {
		It("is pending without a reference", func() {
			Expect(render.Attestation(nil)).To(Equal("pending"))
		})

		It("includes the witness error", func() {
			ref := &lineage.AttestationReference{Status: lineage.AttestationLocalOnly, Error: "refused"}
			Expect(render.Attestation(ref)).To(Equal("local_only (refused)"))
		})
	})

	Describe("History", func() {
		It("handles an empty chain", func() {
			render.History(buf, nil)
			Expect(buf.String()).To(ContainSubstring("No records yet."))
		})

		It("prints one line per record", func() {
			records := storagetest.NewChain(3)
			render.History(buf, records)
			Expect(strings.Count(buf.String(), "\n")).To(Equal(3))
		})
	})

	Describe("Report", func() {
		It("prints every check", func() {
			render.Report(buf, recorder.Report{
				ContentHash: true,
				MerkleRoot:  true,
				ChainLink:   false,
				Signature:   attest.Undecidable,
			})
			out := buf.String()
			Expect(out).To(ContainSubstring("chain link"))
			Expect(out).To(ContainSubstring("signature undecidable"))
		})
	})
})
