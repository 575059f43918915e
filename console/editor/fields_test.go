package editor_test

import (
	"github.com/blacdimirr/traccarsavekid/console/api"
	. "github.com/blacdimirr/traccarsavekid/console/editor"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func float(v float64) *float64 {
	return &v
}

var _ = Describe("SetField", func() {

	var (
		child    api.Child
		snapshot api.Child
	)

	BeforeEach(func() {
		child = api.Child{
			Id:         3,
			Name:       "Ana",
			LastName:   "Lee",
			BirthDate:  "2019-04-11T00:00:00Z",
			Height:     float(104),
			Weight:     float(17.5),
			Conditions: "asthma",
			DeviceId:   5,
			BaseHealth: &api.ChildHealth{HeartRate: float(92)},
		}
		snapshot = child
	})

	It("should never modify its input", func() {
		SetField(child, FieldName, "Mia")
		SetField(child, FieldHeight, float(110))
		SetField(child, FieldDevice, nil)
		Expect(child).To(Equal(snapshot))
	})

	It("should replace only the targeted field", func() {
		updated := SetField(child, FieldLastName, "Kim")
		Expect(updated.LastName).To(Equal("Kim"))

		updated.LastName = child.LastName
		Expect(updated).To(Equal(child))
	})

	It("should clear a measurement with a nil value", func() {
		updated := SetField(child, FieldWeight, nil)
		Expect(updated.Weight).To(BeNil())
	})

	It("should unlink the device with a nil value", func() {
		updated := SetField(child, FieldDevice, nil)
		Expect(updated.DeviceId).To(BeZero())
	})

	It("should accept plain ints for the device reference", func() {
		updated := SetField(child, FieldDevice, 7)
		Expect(updated.DeviceId).To(Equal(int64(7)))
	})

	It("should ignore an unknown field", func() {
		Expect(SetField(child, Field("nickname"), "Lele")).To(Equal(child))
	})
})

var _ = Describe("MergeHealth", func() {

	It("should never modify its input", func() {
		health := &api.ChildHealth{HeartRate: float(92)}
		child := api.Child{Name: "Ana", BaseHealth: health}
		snapshot := *health

		MergeHealth(child, HealthHeartRate, float(120))
		Expect(child.BaseHealth).To(BeIdenticalTo(health))
		Expect(*health).To(Equal(snapshot))
	})

	It("should replace only the targeted sub-field", func() {
		child := api.Child{BaseHealth: &api.ChildHealth{
			HeartRate:   float(92),
			Temperature: float(36.8),
		}}

		updated := MergeHealth(child, HealthSteps, float(4200))
		Expect(updated.BaseHealth.Steps).To(Equal(float(4200)))
		Expect(updated.BaseHealth.HeartRate).To(Equal(float(92)))
		Expect(updated.BaseHealth.Temperature).To(Equal(float(36.8)))
		Expect(updated.BaseHealth.Sleep).To(BeNil())
	})

	It("should merge into an absent structure as if empty", func() {
		child := api.Child{Name: "Ana"}

		updated := MergeHealth(child, HealthSleep, float(9))
		Expect(child.BaseHealth).To(BeNil())
		Expect(updated.BaseHealth).NotTo(BeNil())
		Expect(updated.BaseHealth.Sleep).To(Equal(float(9)))
	})

	It("should allocate a fresh structure on every merge", func() {
		child := api.Child{BaseHealth: &api.ChildHealth{}}

		updated := MergeHealth(child, HealthHeartRate, float(88))
		Expect(updated.BaseHealth).NotTo(BeIdenticalTo(child.BaseHealth))
	})
})
