package control

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EnergyAccumulator clock use", func() {
	var (
		mockCtrl *gomock.Controller
		clock    *MockClock
		acc      *EnergyAccumulator
		t0       time.Time
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		clock = NewMockClock(mockCtrl)
		acc = NewEnergyAccumulator(clock)
		t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should read the clock once per input", func() {
		clock.EXPECT().Now().Return(t0)
		acc.OnInput(0)

		clock.EXPECT().Now().Return(t0.Add(100 * time.Millisecond))
		// Decay drains an empty accumulator to nothing before the charge.
		Expect(acc.OnInput(0.5)).To(BeNumerically("~", 0.48, 1e-12))
	})

	It("should only record the timestamp on the first tick", func() {
		clock.EXPECT().Now().Return(t0)
		Expect(acc.OnTick()).To(Equal(0.0))

		ts, ok := acc.LastTimestamp()
		Expect(ok).To(BeTrue())
		Expect(ts).To(Equal(t0))
	})

	It("should decay on later ticks by elapsed time", func() {
		clock.EXPECT().Now().Return(t0).Times(2)
		acc.OnInput(0)
		acc.OnInput(1)

		clock.EXPECT().Now().Return(t0.Add(200 * time.Millisecond))
		Expect(acc.OnTick()).To(BeNumerically("~", 0.98-0.04, 1e-12))
	})

	It("should not read the clock while frozen", func() {
		acc.Freeze(true)

		Expect(acc.OnInput(1)).To(Equal(0.0))
		Expect(acc.OnTick()).To(Equal(0.0))
		Expect(acc.HasInput()).To(BeFalse())
	})

	It("should not read the clock for NaN input", func() {
		clock.EXPECT().Now().Return(t0)
		acc.OnInput(0.2)

		acc.OnInput(math.NaN())

		x, ok := acc.LastInput()
		Expect(ok).To(BeTrue())
		Expect(x).To(Equal(0.2))
	})

	It("should treat a clock step backwards as zero elapsed time", func() {
		clock.EXPECT().Now().Return(t0).Times(2)
		acc.OnInput(0)
		acc.OnInput(1)

		clock.EXPECT().Now().Return(t0.Add(-time.Second))
		Expect(acc.OnTick()).To(BeNumerically("~", 0.98, 1e-12))
	})

	It("should not read the clock on reset", func() {
		clock.EXPECT().Now().Return(t0)
		acc.OnTick()

		Expect(acc.Reset()).To(Equal(0.0))

		_, ok := acc.LastTimestamp()
		Expect(ok).To(BeFalse())
	})
})
