package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CarModel mirrors the 'cars' table. Images keep upload order in a jsonb array;
// tags are flattened into their own columns so they can be searched.
type CarModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key"`
	Title       string                      `gorm:"type:varchar(30);not null"`
	Description string                      `gorm:"type:varchar(500);not null"`
	Company     string                      `gorm:"type:varchar(255);not null"`
	CarType     string                      `gorm:"type:varchar(255);not null"`
	Dealer      string                      `gorm:"type:varchar(255);not null"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	OwnerID     uuid.UUID                   `gorm:"type:uuid;not null;index:idx_cars_owner_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
