package models

import "time"

type SalonPhoto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ImageURL string `gorm:"size:255;not null" json:"image_url"`
	Caption  string `gorm:"size:100" json:"caption"`
	IsMain   bool   `gorm:"default:false" json:"is_main"`

	CreatedAt time.Time `json:"created_at"`
}
