package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NameRU string `gorm:"size:100;not null" json:"name_ru"`
	NameEN string `gorm:"size:100" json:"name_en"`
	NameUZ string `gorm:"size:100" json:"name_uz"`

	Slug      string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	IconClass string `gorm:"size:80;default:'bi bi-grid'" json:"icon_class"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) LocalizedName(lang string) string {
	return pickLang(c.NameRU, c.NameEN, c.NameUZ, lang)
}
