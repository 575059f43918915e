package editor

import (
	"github.com/blacdimirr/traccarsavekid/console/api"
)

type Field string

const (
	FieldName       Field = "name"
	FieldLastName   Field = "lastName"
	FieldBirthDate  Field = "birthDate"
	FieldHeight     Field = "height"
	FieldWeight     Field = "weight"
	FieldConditions Field = "conditions"
	FieldDevice     Field = "deviceId"
)

type HealthField string

const (
	HealthHeartRate   HealthField = "heartRate"
	HealthTemperature HealthField = "temperature"
	HealthSteps       HealthField = "steps"
	HealthSleep       HealthField = "sleep"
)

// SetField returns a copy of child with one top-level field replaced. The
// input is never modified. An unknown field, or a non-string value for a text
// field, leaves the copy identical to the input; a non-numeric value for a
// measurement field clears it to null.
func SetField(child api.Child, field Field, value interface{}) api.Child {
	switch field {
	case FieldName:
		if v, ok := value.(string); ok {
			child.Name = v
		}
	case FieldLastName:
		if v, ok := value.(string); ok {
			child.LastName = v
		}
	case FieldBirthDate:
		switch v := value.(type) {
		case string:
			child.BirthDate = v
		case nil:
			child.BirthDate = ""
		}
	case FieldHeight:
		child.Height = asNumber(value)
	case FieldWeight:
		child.Weight = asNumber(value)
	case FieldConditions:
		if v, ok := value.(string); ok {
			child.Conditions = v
		}
	case FieldDevice:
		switch v := value.(type) {
		case int64:
			child.DeviceId = v
		case int:
			child.DeviceId = int64(v)
		case nil:
			child.DeviceId = 0
		}
	}
	return child
}

// MergeHealth returns a copy of child whose base-health structure is a fresh
// copy with one sub-field replaced. A child without a base-health structure
// is treated as carrying an empty one, so the merge always succeeds.
func MergeHealth(child api.Child, field HealthField, value *float64) api.Child {
	health := api.ChildHealth{}
	if child.BaseHealth != nil {
		health = *child.BaseHealth
	}

	switch field {
	case HealthHeartRate:
		health.HeartRate = value
	case HealthTemperature:
		health.Temperature = value
	case HealthSteps:
		health.Steps = value
	case HealthSleep:
		health.Sleep = value
	default:
		return child
	}

	child.BaseHealth = &health
	return child
}

func asNumber(value interface{}) *float64 {
	switch v := value.(type) {
	case *float64:
		return v
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case nil:
		return nil
	}
	return nil
}
