// Package listing implements the searchable child roster behind the list
// view: the fetched collection, the device lookup it is joined against, the
// keyword filter, and the refresh cycle that follows every mutation.
package listing

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/blacdimirr/traccarsavekid/console/api"
	"github.com/blacdimirr/traccarsavekid/console/dates"

	"github.com/pkg/errors"
)

// Rendering markers for values that cannot be derived.
const (
	AgeUnknown = "—"
	DeviceNone = "None"
)

type Api interface {
	ListChildren(ctx context.Context) ([]api.Child, error)
	ListDevices(ctx context.Context) ([]api.Device, error)
}

// Row is one renderable line of the roster: the record plus its derived
// display fields.
type Row struct {
	Child      api.Child
	AgeDisplay string
	DeviceName string
}

type Listing struct {
	Api Api `inject:""`

	// Now is the clock used for age derivation; nil means time.Now.
	Now func() time.Time

	mu         sync.Mutex
	items      []api.Child
	lookup     map[int64]api.Device
	keyword    string
	loading    bool
	generation uint64
	closed     bool
}

// Refresh fetches the child collection. Each call starts a new generation;
// when fetches overlap, only the most recently initiated one may publish its
// result, so a slow stale response can never overwrite a fresher one. The
// loading flag always resolves once the newest fetch settles, success or not.
func (l *Listing) Refresh(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.generation++
	generation := l.generation
	l.loading = true
	l.mu.Unlock()

	items, err := l.Api.ListChildren(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || generation != l.generation {
		return nil
	}

	l.loading = false
	if err != nil {
		return errors.Wrap(err, "failed to list children")
	}
	l.items = items
	return nil
}

// RefreshDevices fetches the device collection and rebuilds the id-keyed
// lookup. Independent of Refresh; the roster renders with the DeviceNone
// marker until it completes.
func (l *Listing) RefreshDevices(ctx context.Context) error {
	devices, err := l.Api.ListDevices(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list devices")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}

	lookup := make(map[int64]api.Device, len(devices))
	for _, device := range devices {
		lookup[device.Id] = device
	}
	l.lookup = lookup
	return nil
}

// NotifyMutation is called after a create, update or delete settles; the
// roster only ever reflects mutations through a full refetch.
func (l *Listing) NotifyMutation(ctx context.Context) error {
	return l.Refresh(ctx)
}

// SetKeyword updates the filter. Filtering is client-side only, no refetch.
func (l *Listing) SetKeyword(keyword string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keyword = keyword
}

func (l *Listing) Keyword() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.keyword
}

func (l *Listing) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Close detaches the listing from its view; any fetch still in flight is
// discarded when it settles.
func (l *Listing) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// Rows derives the renderable roster: keyword-filtered in received order,
// each row annotated with the child's age and device name. The underlying
// collection is never modified.
func (l *Listing) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()

	keyword := strings.ToLower(l.keyword)
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}

	rows := make([]Row, 0, len(l.items))
	for _, child := range l.items {
		if keyword != "" && !strings.Contains(strings.ToLower(child.Name+" "+child.LastName), keyword) {
			continue
		}

		row := Row{Child: child, AgeDisplay: AgeUnknown, DeviceName: DeviceNone}
		if years, ok := dates.Age(child.BirthDate, now); ok {
			row.AgeDisplay = strconv.Itoa(years)
		}
		if child.DeviceId != 0 {
			if device, ok := l.lookup[child.DeviceId]; ok {
				row.DeviceName = device.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}
