package dates_test

import (
	"time"

	. "github.com/blacdimirr/traccarsavekid/console/dates"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Age", func() {

	// fixed clock so every expectation is deterministic
	now := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

	Context("when the birthday already passed this year", func() {
		It("should return current year minus birth year", func() {
			age, ok := Age("1990-05-02T00:00:00Z", now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(36))
		})
	})

	Context("when the birthday has not yet passed this year", func() {
		It("should return one less than the year difference", func() {
			age, ok := Age("1990-12-24T00:00:00Z", now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(35))
		})

		It("should compare days within the birth month", func() {
			age, ok := Age("1990-09-15T00:00:00Z", now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(35))
		})
	})

	Context("when the birthday is today", func() {
		It("should count the completed year", func() {
			age, ok := Age("2020-09-01T00:00:00Z", now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(6))
		})
	})

	Context("when the birth date carries milliseconds", func() {
		It("should still parse", func() {
			age, ok := Age("1990-05-02T00:00:00.000Z", now)
			Expect(ok).To(BeTrue())
			Expect(age).To(Equal(36))
		})
	})

	Context("when no age can be derived", func() {
		It("should reject an empty birth date", func() {
			_, ok := Age("", now)
			Expect(ok).To(BeFalse())
		})

		It("should reject an unparseable birth date", func() {
			_, ok := Age("not-a-date", now)
			Expect(ok).To(BeFalse())
		})

		It("should reject a birth date in the future", func() {
			_, ok := Age("2027-03-01T00:00:00Z", now)
			Expect(ok).To(BeFalse())
		})

		It("should reject a birth date later this year", func() {
			_, ok := Age("2026-12-01T00:00:00Z", now)
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("CalendarDate and Timestamp", func() {

	It("should round-trip a calendar date exactly", func() {
		Expect(CalendarDate(Timestamp("2020-01-15"))).To(Equal("2020-01-15"))
	})

	It("should store midnight UTC", func() {
		Expect(Timestamp("2020-01-15")).To(Equal("2020-01-15T00:00:00Z"))
	})

	It("should extract the date portion of a stored timestamp", func() {
		Expect(CalendarDate("1990-05-02T00:00:00.000Z")).To(Equal("1990-05-02"))
	})

	It("should map an absent timestamp to an empty date", func() {
		Expect(CalendarDate("")).To(Equal(""))
	})

	It("should map a cleared date to an absent timestamp", func() {
		Expect(Timestamp("")).To(Equal(""))
	})

	It("should map a malformed date to an absent timestamp", func() {
		Expect(Timestamp("15/01/2020")).To(Equal(""))
	})
})
