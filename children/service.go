package children

import (
	"context"
	"time"

	"github.com/blacdimirr/traccarsavekid/store"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrEmptyChild       = errors.New("childId cannot be empty")
	ErrInvalidBirthDate = errors.New("birthDate is not a valid date")
	ErrInvalidDevice    = errors.New("deviceId is not a valid device reference")
)

type Service interface {
	AddChild(ctx context.Context, request ChildTransport) (ChildTransport, error)
	UpdateChild(ctx context.Context, request ChildTransport) (ChildTransport, error)
	GetChild(ctx context.Context, childId int64) (ChildTransport, error)
	GetChildByDevice(ctx context.Context, deviceId int64) (ChildTransport, error)
	ListChildren(ctx context.Context) ([]ChildTransport, error)
	DeleteChild(ctx context.Context, childId int64) error
}

type ChildService struct {
	Store interface {
		Transaction(fn func(tx *gorm.DB) error) error
		AddChild(tx *gorm.DB, child store.Child) (store.Child, error)
		UpdateChild(tx *gorm.DB, child store.Child) (store.Child, error)
		GetChild(tx *gorm.DB, childId int64) (store.Child, error)
		GetChildByDevice(tx *gorm.DB, deviceId int64) (store.Child, error)
		ListChildren(tx *gorm.DB) ([]store.Child, error)
		DeleteChild(tx *gorm.DB, childId int64) error
		AddHealthSample(tx *gorm.DB, sample store.ChildHealth) (store.ChildHealth, error)
		LatestHealthSample(tx *gorm.DB, childId int64) (store.ChildHealth, error)
	} `inject:""`
}

func (c *ChildService) AddChild(ctx context.Context, request ChildTransport) (ChildTransport, error) {
	child, err := childFromTransport(request)
	if err != nil {
		return ChildTransport{}, err
	}

	now := time.Now().UTC()
	child.CreatedAt = now
	child.UpdatedAt = now

	err = c.Store.Transaction(func(tx *gorm.DB) error {
		child, err = c.Store.AddChild(tx, child)
		if err != nil {
			return errors.Wrap(err, "failed to add child")
		}
		return c.persistBaseHealth(tx, child.ChildId, request.BaseHealth, now)
	})
	if err != nil {
		return ChildTransport{}, err
	}

	return childToTransport(child, request.BaseHealth), nil
}

func (c *ChildService) UpdateChild(ctx context.Context, request ChildTransport) (ChildTransport, error) {
	if request.Id == 0 {
		return ChildTransport{}, ErrEmptyChild
	}

	child, err := childFromTransport(request)
	if err != nil {
		return ChildTransport{}, err
	}

	err = c.Store.Transaction(func(tx *gorm.DB) error {
		stored, err := c.Store.GetChild(tx, request.Id)
		if err != nil {
			return errors.Wrap(err, "failed to update child")
		}

		// createdAt always survives an update, only updatedAt moves
		child.CreatedAt = stored.CreatedAt
		child.UpdatedAt = time.Now().UTC()

		child, err = c.Store.UpdateChild(tx, child)
		if err != nil {
			return errors.Wrap(err, "failed to update child")
		}

		return c.persistBaseHealth(tx, child.ChildId, request.BaseHealth, child.UpdatedAt)
	})
	if err != nil {
		return ChildTransport{}, err
	}

	return childToTransport(child, request.BaseHealth), nil
}

func (c *ChildService) GetChild(ctx context.Context, childId int64) (ChildTransport, error) {
	child, err := c.Store.GetChild(nil, childId)
	if err != nil {
		return ChildTransport{}, errors.Wrap(err, "failed to get child")
	}

	health, err := c.latestBaseHealth(child.ChildId)
	if err != nil {
		return ChildTransport{}, err
	}

	return childToTransport(child, health), nil
}

func (c *ChildService) GetChildByDevice(ctx context.Context, deviceId int64) (ChildTransport, error) {
	child, err := c.Store.GetChildByDevice(nil, deviceId)
	if err != nil {
		return ChildTransport{}, errors.Wrap(err, "failed to get child by device")
	}

	return childToTransport(child, nil), nil
}

func (c *ChildService) ListChildren(ctx context.Context) ([]ChildTransport, error) {
	children, err := c.Store.ListChildren(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children")
	}

	ret := []ChildTransport{}
	for _, child := range children {
		ret = append(ret, childToTransport(child, nil))
	}
	return ret, nil
}

func (c *ChildService) DeleteChild(ctx context.Context, childId int64) error {
	if err := c.Store.DeleteChild(nil, childId); err != nil {
		return errors.Wrap(err, "failed to delete child")
	}

	return nil
}

// persistBaseHealth records the submitted base-health values as a timestamped
// sample row. A missing or all-null structure is not recorded.
func (c *ChildService) persistBaseHealth(tx *gorm.DB, childId int64, health *HealthTransport, timestamp time.Time) error {
	if !hasHealthValues(health) {
		return nil
	}

	_, err := c.Store.AddHealthSample(tx, store.ChildHealth{
		ChildId:     childId,
		HeartRate:   health.HeartRate,
		Temperature: health.Temperature,
		Steps:       health.Steps,
		Sleep:       health.Sleep,
		Timestamp:   timestamp,
	})
	return errors.Wrap(err, "failed to record base health")
}

// latestBaseHealth reads back the most recent recorded sample. A child with no
// recorded sample has no base health.
func (c *ChildService) latestBaseHealth(childId int64) (*HealthTransport, error) {
	sample, err := c.Store.LatestHealthSample(nil, childId)
	if err == store.ErrChildNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get base health")
	}

	return &HealthTransport{
		HeartRate:   sample.HeartRate,
		Temperature: sample.Temperature,
		Steps:       sample.Steps,
		Sleep:       sample.Sleep,
	}, nil
}

func hasHealthValues(health *HealthTransport) bool {
	return health != nil && (health.HeartRate != nil ||
		health.Temperature != nil ||
		health.Steps != nil ||
		health.Sleep != nil)
}

func childFromTransport(request ChildTransport) (store.Child, error) {
	child := store.Child{
		ChildId:    request.Id,
		Name:       request.Name,
		LastName:   request.LastName,
		Height:     request.Height,
		Weight:     request.Weight,
		Conditions: request.Conditions,
		DeviceId:   request.DeviceId,
	}

	if request.DeviceId < 0 {
		return store.Child{}, ErrInvalidDevice
	}

	if request.BirthDate != "" {
		t, err := dateparse.ParseIn(request.BirthDate, time.UTC)
		if err != nil {
			return store.Child{}, errors.Wrap(ErrInvalidBirthDate, err.Error())
		}
		child.BirthDate = &t
	}

	return child, nil
}

func childToTransport(child store.Child, health *HealthTransport) ChildTransport {
	ret := ChildTransport{
		Id:         child.ChildId,
		Name:       child.Name,
		LastName:   child.LastName,
		Height:     child.Height,
		Weight:     child.Weight,
		Conditions: child.Conditions,
		DeviceId:   child.DeviceId,
		BaseHealth: health,
		CreatedAt:  child.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  child.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if child.BirthDate != nil {
		ret.BirthDate = child.BirthDate.UTC().Format(time.RFC3339)
	}

	return ret
}
