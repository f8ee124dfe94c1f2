package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel guarda os dados pessoais do usuário. O telefone é
// armazenado apenas com dígitos.
type ProfileModel struct {
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName string    `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	Phone     string    `gorm:"column:phone;type:varchar(20)" json:"phone"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
