package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel é append-only: registros nunca são atualizados nem removidos.
type AuditLogModel struct {
	AuditLogID uuid.UUID      `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	TableName_ string         `gorm:"column:table_name;type:varchar(100);index;not null" json:"table_name"`
	RecordID   string         `gorm:"column:record_id;type:varchar(100);index;not null" json:"record_id"`
	Action     string         `gorm:"column:action;type:varchar(20);not null" json:"action"`
	OldValues  datatypes.JSON `gorm:"column:old_values;type:jsonb" json:"old_values,omitempty"`
	NewValues  datatypes.JSON `gorm:"column:new_values;type:jsonb" json:"new_values,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
