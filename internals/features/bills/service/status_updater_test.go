package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billModel "contaspagar_backend/internals/features/bills/model"
)

type fakeStore struct {
	mu          sync.Mutex
	bill        *billModel.BillModel
	updateCalls int
	updateErr   error
	getDelay    time.Duration
}

func (s *fakeStore) GetByID(ctx context.Context, userID, billID uuid.UUID) (*billModel.BillModel, error) {
	if s.getDelay > 0 {
		time.Sleep(s.getDelay)
	}
	if s.bill == nil {
		return nil, errors.New("record not found")
	}
	cp := *s.bill
	return &cp, nil
}

func (s *fakeStore) UpdateStatus(ctx context.Context, billID uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if s.updateErr != nil {
		return s.updateErr
	}
	s.bill.Status = status
	return nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []string
	fail    bool
}

func (r *fakeRecorder) Record(ctx context.Context, userID uuid.UUID, tableName, recordID, action string, oldValues, newValues interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		// Simula falha interna: o serviço real só loga, nunca propaga
		return
	}
	r.entries = append(r.entries, action)
}

func newTestUpdater(bill *billModel.BillModel, now time.Time) (*StatusUpdater, *fakeStore, *fakeRecorder) {
	store := &fakeStore{bill: bill}
	recorder := &fakeRecorder{}
	u := NewStatusUpdater(store, recorder)
	u.Now = func() time.Time { return now }
	return u, store, recorder
}

func testBill(status string, dueDate time.Time) *billModel.BillModel {
	return &billModel.BillModel{
		BillID:  uuid.New(),
		UserID:  uuid.New(),
		Status:  status,
		DueDate: dueDate,
	}
}

func TestUpdateStatusPendingParaPaid(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, 5))
	u, store, recorder := newTestUpdater(bill, now)

	got, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, billModel.StatusPaid, got.Status)
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, []string{"status_update"}, recorder.entries)
}

func TestUpdateStatusPaidEhTerminal(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPaid, now)
	u, store, _ := newTestUpdater(bill, now)

	_, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPending)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, `Cannot change status from "paid" to "pending"`, denied.Reason)
	// Recusa não toca o banco
	assert.Equal(t, 0, store.updateCalls)
}

func TestUpdateStatusDerivaOverdueAntesDeValidar(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	// Pendente vencida há uma semana: o status efetivo é overdue,
	// então overdue→pending é recusado
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, -7))
	u, _, _ := newTestUpdater(bill, now)

	_, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPending)
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, `Cannot change status from "overdue" to "pending"`, denied.Reason)
}

func TestUpdateStatusPersisteOverdueDerivado(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, -7))
	u, store, _ := newTestUpdater(bill, now)

	got, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusOverdue)
	require.NoError(t, err)
	assert.Equal(t, billModel.StatusOverdue, got.Status)
	assert.Equal(t, 1, store.updateCalls)
}

func TestUpdateStatusNoOpNaoPersiste(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPaid, now)
	u, store, recorder := newTestUpdater(bill, now)

	got, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, billModel.StatusPaid, got.Status)
	assert.Equal(t, 0, store.updateCalls)
	assert.Empty(t, recorder.entries)
}

func TestUpdateStatusErroDePersistencia(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, 5))
	u, store, recorder := newTestUpdater(bill, now)
	store.updateErr = errors.New("connection refused")

	_, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
	require.Error(t, err)
	// Sem persistência, sem auditoria
	assert.Empty(t, recorder.entries)
}

func TestUpdateStatusFalhaDeAuditoriaNaoFalhaAChamada(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, 5))
	u, store, recorder := newTestUpdater(bill, now)
	recorder.fail = true

	got, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, billModel.StatusPaid, got.Status)
	assert.Equal(t, 1, store.updateCalls)
}

func TestUpdateStatusConcorrenteDoMesmoUsuarioEhRejeitado(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	bill := testBill(billModel.StatusPending, now.AddDate(0, 0, 5))
	store := &fakeStore{bill: bill, getDelay: 100 * time.Millisecond}
	u := NewStatusUpdater(store, &fakeRecorder{})
	u.Now = func() time.Time { return now }

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
		done <- err
	}()

	<-started
	time.Sleep(20 * time.Millisecond)
	_, err := u.UpdateStatus(context.Background(), bill.UserID, bill.BillID, billModel.StatusPaid)
	assert.ErrorIs(t, err, ErrUpdateInProgress)

	require.NoError(t, <-done)

	// Usuário diferente não é bloqueado enquanto o primeiro roda
	otherBill := testBill(billModel.StatusPending, now.AddDate(0, 0, 5))
	otherStore := &fakeStore{bill: otherBill}
	u2 := NewStatusUpdater(otherStore, &fakeRecorder{})
	u2.Now = func() time.Time { return now }
	_, err = u2.UpdateStatus(context.Background(), otherBill.UserID, otherBill.BillID, billModel.StatusPaid)
	assert.NoError(t, err)
}

func TestDeriveDisplayStatus(t *testing.T) {
	now := time.Date(2026, 6, 10, 23, 30, 0, 0, time.UTC)

	// Vence hoje: ainda pendente
	assert.Equal(t, billModel.StatusPending,
		DeriveDisplayStatus(billModel.StatusPending, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), now))
	// Venceu ontem: vencida
	assert.Equal(t, billModel.StatusOverdue,
		DeriveDisplayStatus(billModel.StatusPending, time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC), now))
	// Paga nunca vira vencida
	assert.Equal(t, billModel.StatusPaid,
		DeriveDisplayStatus(billModel.StatusPaid, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), now))
}
