package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "contaspagar_backend/internals/features/audit/service"
	billModel "contaspagar_backend/internals/features/bills/model"
)

const persistTimeout = 3 * time.Second

// ErrUpdateInProgress: o usuário já tem uma troca de status em andamento.
// A segunda chamada é rejeitada na hora, não enfileirada.
var ErrUpdateInProgress = errors.New("já existe uma atualização de status em andamento")

// DeniedError carrega o motivo de uma transição recusada.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string { return e.Reason }

// BillStore abstrai o acesso às contas para o atualizador de status.
type BillStore interface {
	GetByID(ctx context.Context, userID, billID uuid.UUID) (*billModel.BillModel, error)
	UpdateStatus(ctx context.Context, billID uuid.UUID, status string) error
}

// StatusUpdater aplica a troca de status de uma conta:
// deriva overdue pelo vencimento, valida a transição, persiste com
// timeout explícito e audita em best-effort.
type StatusUpdater struct {
	Store BillStore
	Audit auditService.Recorder
	Now   func() time.Time

	mu   sync.Mutex
	busy map[uuid.UUID]bool
}

func NewStatusUpdater(store BillStore, audit auditService.Recorder) *StatusUpdater {
	return &StatusUpdater{
		Store: store,
		Audit: audit,
		Now:   time.Now,
		busy:  make(map[uuid.UUID]bool),
	}
}

// DeriveDisplayStatus devolve o status de exibição: pending vencida
// vira overdue. Só compara datas (dia), não horas.
func DeriveDisplayStatus(status string, dueDate, now time.Time) string {
	if status != billModel.StatusPending {
		return status
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return billModel.StatusOverdue
	}
	return status
}

func (u *StatusUpdater) acquire(userID uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.busy[userID] {
		return false
	}
	u.busy[userID] = true
	return true
}

func (u *StatusUpdater) release(userID uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.busy, userID)
}

// UpdateStatus executa a troca e devolve a conta com o status final.
// Falha de auditoria nunca falha a operação.
func (u *StatusUpdater) UpdateStatus(ctx context.Context, userID, billID uuid.UUID, requested string) (*billModel.BillModel, error) {
	if !u.acquire(userID) {
		return nil, ErrUpdateInProgress
	}
	defer u.release(userID)

	bill, err := u.Store.GetByID(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	current := DeriveDisplayStatus(bill.Status, bill.DueDate, u.Now())

	result := ValidateStatusTransition(current, requested)
	if !result.Allowed {
		return nil, &DeniedError{Reason: result.Reason}
	}

	// No-op: status pedido já é o persistido, nada a gravar
	if requested == bill.Status {
		bill.Status = requested
		return bill, nil
	}

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := u.Store.UpdateStatus(persistCtx, billID, requested); err != nil {
		return nil, err
	}

	u.Audit.Record(ctx, userID, "bills", billID.String(), auditService.ActionStatusUpdate,
		map[string]string{"status": current},
		map[string]string{"status": requested})

	bill.Status = requested
	return bill, nil
}

/* ==========================
   Implementação GORM
========================== */

type GormBillStore struct {
	DB *gorm.DB
}

func NewGormBillStore(db *gorm.DB) *GormBillStore {
	return &GormBillStore{DB: db}
}

func (s *GormBillStore) GetByID(ctx context.Context, userID, billID uuid.UUID) (*billModel.BillModel, error) {
	var bill billModel.BillModel
	err := s.DB.WithContext(ctx).
		Where("bill_id = ? AND user_id = ?", billID, userID).
		First(&bill).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *GormBillStore) UpdateStatus(ctx context.Context, billID uuid.UUID, status string) error {
	return s.DB.WithContext(ctx).
		Model(&billModel.BillModel{}).
		Where("bill_id = ?", billID).
		Update("status", status).Error
}
