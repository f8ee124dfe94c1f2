package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankModel struct {
	BankID   uuid.UUID `gorm:"column:bank_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bank_id"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	BankName string    `gorm:"column:bank_name;type:varchar(150);not null" json:"bank_name"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (BankModel) TableName() string {
	return "banks"
}
