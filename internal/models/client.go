package models

import "time"

// Client é a linha persistida; ConcurrencyToken é trocado a cada escrita.
type Client struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	Name        string    `gorm:"size:100;not null" json:"name"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	BirthDate   time.Time `gorm:"type:date" json:"birth_date"`

	IsActive bool `gorm:"not null;index" json:"is_active"`

	ConcurrencyToken []byte `gorm:"not null" json:"-"`

	IsRemoved bool       `gorm:"not null;default:false;index" json:"is_removed"`
	RemovedAt *time.Time `json:"removed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
