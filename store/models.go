package store

import (
	"time"
)

type Child struct {
	ChildId    int64  `gorm:"column:id;primary_key"`
	Name       string `gorm:"column:name"`
	LastName   string `gorm:"column:lastname"`
	BirthDate  *time.Time
	Height     *float64
	Weight     *float64
	Conditions string
	DeviceId   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Child) TableName() string {
	return "tc_children"
}

// One sample row per submitted base-health snapshot, keyed to the child.
type ChildHealth struct {
	HealthId    int64 `gorm:"column:id;primary_key"`
	ChildId     int64
	HeartRate   *float64
	Temperature *float64
	Steps       *float64
	Sleep       *float64
	Timestamp   time.Time
}

func (ChildHealth) TableName() string {
	return "tc_child_health"
}

type Device struct {
	DeviceId int64  `gorm:"column:id;primary_key"`
	Name     string `gorm:"column:name"`
}

func (Device) TableName() string {
	return "tc_devices"
}
