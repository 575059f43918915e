package store

import "github.com/jinzhu/gorm"

func (s *Store) ListDevices(tx *gorm.DB) ([]Device, error) {
	db := s.dbOrTx(tx)

	devices := []Device{}
	if err := db.Order("id").Find(&devices).Error; err != nil {
		return nil, err
	}

	return devices, nil
}
