package store

import (
	"errors"

	"github.com/jinzhu/gorm"
)

var (
	ErrChildNotFound = errors.New("child not found")
)

func (s *Store) AddChild(tx *gorm.DB, child Child) (Child, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&child).Error; err != nil {
		return Child{}, err
	}

	return child, nil
}

func (s *Store) UpdateChild(tx *gorm.DB, child Child) (Child, error) {
	db := s.dbOrTx(tx)

	if !s.childExists(db, child.ChildId) {
		return Child{}, ErrChildNotFound
	}

	if err := db.Save(&child).Error; err != nil {
		return Child{}, err
	}

	return child, nil
}

func (s *Store) GetChild(tx *gorm.DB, childId int64) (Child, error) {
	db := s.dbOrTx(tx)

	child := Child{}
	res := db.Where("id = ?", childId).First(&child)
	if res.RecordNotFound() {
		return Child{}, ErrChildNotFound
	}
	if res.Error != nil {
		return Child{}, res.Error
	}

	return child, nil
}

// GetChildByDevice returns the child linked to the device the longest.
func (s *Store) GetChildByDevice(tx *gorm.DB, deviceId int64) (Child, error) {
	db := s.dbOrTx(tx)

	child := Child{}
	res := db.Where("device_id = ?", deviceId).Order("created_at").First(&child)
	if res.RecordNotFound() {
		return Child{}, ErrChildNotFound
	}
	if res.Error != nil {
		return Child{}, res.Error
	}

	return child, nil
}

func (s *Store) ListChildren(tx *gorm.DB) ([]Child, error) {
	db := s.dbOrTx(tx)

	children := []Child{}
	if err := db.Order("name").Find(&children).Error; err != nil {
		return nil, err
	}

	return children, nil
}

func (s *Store) DeleteChild(tx *gorm.DB, childId int64) error {
	db := s.dbOrTx(tx)

	if !s.childExists(db, childId) {
		return ErrChildNotFound
	}

	if err := db.Where("child_id = ?", childId).Delete(&ChildHealth{}).Error; err != nil {
		return err
	}

	return db.Where("id = ?", childId).Delete(&Child{}).Error
}

func (s *Store) AddHealthSample(tx *gorm.DB, sample ChildHealth) (ChildHealth, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&sample).Error; err != nil {
		return ChildHealth{}, err
	}

	return sample, nil
}

// LatestHealthSample returns the most recent base-health snapshot of a child,
// or ErrChildNotFound when none was ever recorded.
func (s *Store) LatestHealthSample(tx *gorm.DB, childId int64) (ChildHealth, error) {
	db := s.dbOrTx(tx)

	sample := ChildHealth{}
	res := db.Where("child_id = ?", childId).Order("timestamp desc").First(&sample)
	if res.RecordNotFound() {
		return ChildHealth{}, ErrChildNotFound
	}
	if res.Error != nil {
		return ChildHealth{}, res.Error
	}

	return sample, nil
}

func (s *Store) childExists(tx *gorm.DB, childId int64) bool {
	c := Child{}
	return !tx.Model(Child{}).Where("id = ?", childId).First(&c).RecordNotFound()
}
