package models

import "time"

// Usuário espelhado do serviço de identidade externo.
// Sem senha aqui: autenticação acontece fora deste serviço.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;default:'client'" json:"role"`

	// Relação opcional, resolvida uma única vez ao montar eventos
	// de notificação (nil = usuário sem telegram vinculado)
	TelegramChatID *string `gorm:"size:32" json:"telegram_chat_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
