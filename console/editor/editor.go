// Package editor implements the single-record edit state behind the child
// profile form: load-or-initialize, partial field updates, the calendar-date
// boundary, and the save gate.
package editor

import (
	"context"
	"strconv"

	"github.com/blacdimirr/traccarsavekid/console/api"
	"github.com/blacdimirr/traccarsavekid/console/dates"

	"github.com/pkg/errors"
)

type Getter interface {
	GetChild(ctx context.Context, childId int64) (api.Child, error)
}

// Validator gates persistence; the save affordance stays disabled until it
// accepts the record.
type Validator func(api.Child) bool

// RequireNames is the validation rule of the administrative edition.
func RequireNames(child api.Child) bool {
	return child.Name != "" && child.LastName != ""
}

// RequireNamesAndDevice is the validation rule of the public edition, which
// only manages children linked to a tracked device.
func RequireNamesAndDevice(child api.Child) bool {
	return RequireNames(child) && child.DeviceId != 0
}

type Editor struct {
	Api Getter `inject:""`

	// Validate decides whether the current record may be persisted. A nil
	// validator accepts everything.
	Validate Validator

	// DefaultBaseHealth makes the editor synthesize an empty base-health
	// structure whenever the record lacks one, so nested updates always have
	// a structure to merge into.
	DefaultBaseHealth bool

	record api.Child
	loaded bool
}

// Load fetches an existing record. The fetch error is returned untouched for
// the caller's error surface; the editor stays unset in that case.
func (e *Editor) Load(ctx context.Context, childId int64) error {
	child, err := e.Api.GetChild(ctx, childId)
	if err != nil {
		return errors.Wrap(err, "failed to load child")
	}

	e.record = child
	e.loaded = true
	e.normalize()
	return nil
}

// Init starts a fresh record from edition defaults instead of a fetch.
func (e *Editor) Init(defaults api.Child) {
	e.record = defaults
	e.loaded = true
	e.normalize()
}

func (e *Editor) Loaded() bool {
	return e.loaded
}

func (e *Editor) Record() api.Child {
	return e.record
}

func (e *Editor) Update(field Field, value interface{}) {
	if !e.loaded {
		return
	}
	e.record = SetField(e.record, field, value)
	e.normalize()
}

func (e *Editor) UpdateHealth(field HealthField, value *float64) {
	if !e.loaded {
		return
	}
	e.record = MergeHealth(e.record, field, value)
	e.normalize()
}

// SetNumber applies an edited text value to a measurement field. Empty or
// unparseable input stores null, never zero.
func (e *Editor) SetNumber(field Field, text string) {
	e.Update(field, parseNumber(text))
}

func (e *Editor) SetHealthNumber(field HealthField, text string) {
	e.UpdateHealth(field, parseNumber(text))
}

// BirthDate returns the calendar-date portion of the stored birth date for
// the form, or "" when none is stored.
func (e *Editor) BirthDate() string {
	return dates.CalendarDate(e.record.BirthDate)
}

// SetBirthDate stores an edited calendar date as a midnight-UTC timestamp,
// or clears the birth date when the input is empty.
func (e *Editor) SetBirthDate(day string) {
	e.Update(FieldBirthDate, dates.Timestamp(day))
}

func (e *Editor) CanPersist() bool {
	if !e.loaded {
		return false
	}
	if e.Validate == nil {
		return true
	}
	return e.Validate(e.record)
}

// normalize runs after every state change and is idempotent.
func (e *Editor) normalize() {
	if e.DefaultBaseHealth && e.record.BaseHealth == nil {
		e.record.BaseHealth = &api.ChildHealth{}
	}
}

func parseNumber(text string) *float64 {
	if text == "" {
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &value
}
