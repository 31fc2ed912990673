package models

import "time"

// Horário de funcionamento do salão por dia da semana.
// Weekday segue time.Weekday (0 = domingo). Um registro por (salão, dia).
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"uniqueIndex:idx_salon_weekday" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday  int  `gorm:"uniqueIndex:idx_salon_weekday" json:"weekday"`
	IsClosed bool `gorm:"default:false" json:"is_closed"`

	// "HH:MM"; vazios quando fechado
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
