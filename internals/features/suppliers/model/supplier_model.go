package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierModel struct {
	SupplierID     uuid.UUID  `gorm:"column:supplier_id;type:uuid;default:gen_random_uuid();primaryKey" json:"supplier_id"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	SupplierName   string     `gorm:"column:supplier_name;type:varchar(200);not null" json:"supplier_name"`
	SupplierEmail  *string    `gorm:"column:supplier_email;type:varchar(255)" json:"supplier_email,omitempty"`
	SupplierPhone  *string    `gorm:"column:supplier_phone;type:varchar(20)" json:"supplier_phone,omitempty"`
	SupplierAddress *string   `gorm:"column:supplier_address;type:text" json:"supplier_address,omitempty"`
	SupplierTypeID *uuid.UUID `gorm:"column:supplier_type_id;type:uuid;index" json:"supplier_type_id,omitempty"`

	SupplierType *SupplierTypeModel `gorm:"foreignKey:SupplierTypeID;references:SupplierTypeID" json:"supplier_type,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (SupplierModel) TableName() string {
	return "suppliers"
}
