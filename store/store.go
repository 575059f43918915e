package store

import "github.com/jinzhu/gorm"

type Store struct {
	Db *gorm.DB `inject:""`
}

func (s *Store) Transaction(fn func(tx *gorm.DB) error) error {
	return s.Db.Transaction(fn)
}

func (s *Store) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.Db
}
