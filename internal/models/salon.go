package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	NameRU string `gorm:"size:200;not null" json:"name_ru"`
	NameEN string `gorm:"size:200" json:"name_en"`
	NameUZ string `gorm:"size:200" json:"name_uz"`

	DescriptionRU string `gorm:"type:text" json:"description_ru"`
	DescriptionEN string `gorm:"type:text" json:"description_en"`
	DescriptionUZ string `gorm:"type:text" json:"description_uz"`

	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	LogoURL string `gorm:"size:255" json:"logo_url"`

	// IANA, usado para interpretar datas de agendamento
	Timezone string `gorm:"size:64;default:'Asia/Tashkent'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Salon) LocalizedName(lang string) string {
	return pickLang(s.NameRU, s.NameEN, s.NameUZ, lang)
}

func (s *Salon) LocalizedDescription(lang string) string {
	return pickLang(s.DescriptionRU, s.DescriptionEN, s.DescriptionUZ, lang)
}
