package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierTypeModel é a tabela de categorias de fornecedor (energia,
// telefonia, aluguel etc.), escopada por usuário.
type SupplierTypeModel struct {
	SupplierTypeID   uuid.UUID `gorm:"column:supplier_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"supplier_type_id"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;index:idx_supplier_types_user_name,unique;not null" json:"user_id"`
	SupplierTypeName string    `gorm:"column:supplier_type_name;type:varchar(100);index:idx_supplier_types_user_name,unique;not null" json:"supplier_type_name"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (SupplierTypeModel) TableName() string {
	return "supplier_types"
}
