package devices

import (
	"context"

	"github.com/blacdimirr/traccarsavekid/store"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type Service interface {
	ListDevices(ctx context.Context) ([]DeviceTransport, error)
}

// Device records are owned by the tracking platform; this service only ever
// reads them to resolve child-to-device links.
type DeviceService struct {
	Store interface {
		ListDevices(tx *gorm.DB) ([]store.Device, error)
	} `inject:""`
}

func (d *DeviceService) ListDevices(ctx context.Context) ([]DeviceTransport, error) {
	devices, err := d.Store.ListDevices(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	ret := []DeviceTransport{}
	for _, device := range devices {
		ret = append(ret, DeviceTransport{
			Id:   device.DeviceId,
			Name: device.Name,
		})
	}
	return ret, nil
}
