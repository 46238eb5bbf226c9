package entities_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"usernetwork/src/domain/entities"
)

var _ = Describe("RequestStatus", func() {
	Context("when classifying statuses", func() {
		It("accepts interested and ignored at creation only", func() {
			Expect(entities.StatusInterested.IsCreationStatus()).To(BeTrue())
			Expect(entities.StatusIgnored.IsCreationStatus()).To(BeTrue())
			Expect(entities.StatusAccepted.IsCreationStatus()).To(BeFalse())
			Expect(entities.StatusRejected.IsCreationStatus()).To(BeFalse())
		})

		It("accepts accepted and rejected at review only", func() {
			Expect(entities.StatusAccepted.IsDecisionStatus()).To(BeTrue())
			Expect(entities.StatusRejected.IsDecisionStatus()).To(BeTrue())
			Expect(entities.StatusInterested.IsDecisionStatus()).To(BeFalse())
			Expect(entities.StatusIgnored.IsDecisionStatus()).To(BeFalse())
		})
	})

	Context("when parsing raw input", func() {
		It("parses the four known statuses", func() {
			for _, raw := range []string{"interested", "ignored", "accepted", "rejected"} {
				status, ok := entities.ParseRequestStatus(raw)
				Expect(ok).To(BeTrue())
				Expect(string(status)).To(Equal(raw))
			}
		})

		It("rejects anything else", func() {
			for _, raw := range []string{"", "friend", "INTERESTED", "accepted "} {
				_, ok := entities.ParseRequestStatus(raw)
				Expect(ok).To(BeFalse())
			}
		})
	})
})

var _ = Describe("ConnectionRequest", func() {
	edge := entities.ConnectionRequest{FromUserID: 10, ToUserID: 20}

	It("resolves the counterpart from either endpoint", func() {
		Expect(edge.CounterpartOf(10)).To(Equal(int64(20)))
		Expect(edge.CounterpartOf(20)).To(Equal(int64(10)))
	})

	It("knows which users it touches", func() {
		Expect(edge.Touches(10)).To(BeTrue())
		Expect(edge.Touches(20)).To(BeTrue())
		Expect(edge.Touches(30)).To(BeFalse())
	})
})
