package nats_test

import (
	"context"
	"encoding/json"
	"os"
	"time"

	natsgo "github.com/nats-io/nats.go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/eventstream"
	"github.com/papercomputeco/lineage/pkg/eventstream/nats"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage/storagetest"
)

var _ = Describe("Publisher", func() {
	It("fails to connect to an unreachable server", func() {
		_, err := nats.NewPublisher(nats.Config{
			URL:            "nats://127.0.0.1:1",
			ConnectTimeout: 100 * time.Millisecond,
		})
		Expect(err).To(HaveOccurred())
	})

	Context("with a running server", func() {
		var url string

		BeforeEach(func() {
			url = os.Getenv("LINEAGE_TEST_NATS_URL")
			if url == "" {
				Skip("LINEAGE_TEST_NATS_URL not set, skipping NATS tests")
			}
		})

		It("publishes record events to the subject", func() {
			sub, err := natsgo.Connect(url)
			Expect(err).NotTo(HaveOccurred())
			defer sub.Close()

			msgs := make(chan *natsgo.Msg, 1)
			s, err := sub.ChanSubscribe("lineage.test.records", msgs)
			Expect(err).NotTo(HaveOccurred())
			defer s.Unsubscribe()
			Expect(sub.Flush()).To(Succeed())

			p, err := nats.NewPublisher(nats.Config{URL: url, Subject: "lineage.test.records"})
			Expect(err).NotTo(HaveOccurred())
			defer p.Close()

			rec := storagetest.NewRecord(nil)
			event := eventstream.NewRecordAppendedEvent(rec, run.Summary{})
			Expect(p.PublishRecord(context.Background(), event)).To(Succeed())

			var msg *natsgo.Msg
			Eventually(msgs).Should(Receive(&msg))
			Expect(msg.Header.Get("Lineage-Event-Type")).To(Equal(eventstream.EventTypeRecordAppended))

			var decoded eventstream.RecordAppendedEvent
			Expect(json.Unmarshal(msg.Data, &decoded)).To(Succeed())
			Expect(decoded.Record.ExecutionID).To(Equal(rec.ExecutionID))
		})
	})
})
