// Package service grava a trilha de auditoria das operações de escrita.
// A gravação é best-effort: uma falha aqui nunca derruba a operação
// principal, apenas gera log.
package service

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "contaspagar_backend/internals/features/audit/model"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusUpdate = "status_update"
)

// Recorder é a interface consumida pelos controllers e services que
// precisam auditar escritas.
type Recorder interface {
	Record(ctx context.Context, userID uuid.UUID, tableName, recordID, action string, oldValues, newValues interface{})
}

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record insere uma entrada de auditoria. Erros são apenas logados.
func (s *AuditService) Record(ctx context.Context, userID uuid.UUID, tableName, recordID, action string, oldValues, newValues interface{}) {
	entry := auditModel.AuditLogModel{
		UserID:     userID,
		TableName_: tableName,
		RecordID:   recordID,
		Action:     action,
	}

	if oldValues != nil {
		if raw, err := sonic.Marshal(oldValues); err == nil {
			entry.OldValues = datatypes.JSON(raw)
		} else {
			log.Println("[WARNING] Auditoria: falha ao serializar old_values:", err)
		}
	}
	if newValues != nil {
		if raw, err := sonic.Marshal(newValues); err == nil {
			entry.NewValues = datatypes.JSON(raw)
		} else {
			log.Println("[WARNING] Auditoria: falha ao serializar new_values:", err)
		}
	}

	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[WARNING] Auditoria: falha ao registrar %s em %s/%s: %v", action, tableName, recordID, err)
	}
}
