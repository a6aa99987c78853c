package model

import "time"

// CartModel is the GORM-specific struct for the 'carts' table. One row per
// storage key; the payload holds the serialized cart line list exactly as
// the domain's key-value contract describes it.
type CartModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Payload   []byte `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
