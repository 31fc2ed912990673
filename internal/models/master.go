package models

import "time"

type Master struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Usuário vinculado é opcional (mestre pode não ter login)
	UserID *uint `json:"user_id,omitempty"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name string `gorm:"size:100;not null" json:"name"`

	SpecializationRU string `gorm:"size:100" json:"specialization_ru"`
	SpecializationEN string `gorm:"size:100" json:"specialization_en"`
	SpecializationUZ string `gorm:"size:100" json:"specialization_uz"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Master) LocalizedSpecialization(lang string) string {
	return pickLang(m.SpecializationRU, m.SpecializationEN, m.SpecializationUZ, lang)
}
