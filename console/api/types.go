package api

// Child is the wire shape of the savekid/children collection as the console
// edits it. Optional measurements are pointers so an absent value survives a
// round trip as null, never as zero. DeviceId zero means no linked device and
// BirthDate empty means no recorded birth date; both are dropped from the
// payload entirely.
type Child struct {
	Id         int64        `json:"id,omitempty"`
	Name       string       `json:"name"`
	LastName   string       `json:"lastName"`
	BirthDate  string       `json:"birthDate,omitempty"`
	Height     *float64     `json:"height"`
	Weight     *float64     `json:"weight"`
	Conditions string       `json:"conditions,omitempty"`
	DeviceId   int64        `json:"deviceId,omitempty"`
	BaseHealth *ChildHealth `json:"baseHealth,omitempty"`
}

type ChildHealth struct {
	HeartRate   *float64 `json:"heartRate"`
	Temperature *float64 `json:"temperature"`
	Steps       *float64 `json:"steps"`
	Sleep       *float64 `json:"sleep"`
}

type Device struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}
