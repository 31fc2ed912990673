package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	NameRU string `gorm:"size:200;not null" json:"name_ru"`
	NameEN string `gorm:"size:200" json:"name_en"`
	NameUZ string `gorm:"size:200" json:"name_uz"`

	DescriptionRU string `gorm:"type:text" json:"description_ru"`
	DescriptionEN string `gorm:"type:text" json:"description_en"`
	DescriptionUZ string `gorm:"type:text" json:"description_uz"`

	ImageURL string `gorm:"size:255" json:"image_url"`

	Price float64 `gorm:"type:numeric(10,2)" json:"price"`

	// Imutável após criação: é a base do cálculo de slots
	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) LocalizedName(lang string) string {
	return pickLang(s.NameRU, s.NameEN, s.NameUZ, lang)
}
