package consultations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	consultationRepo "github.com/wang2185/daylawyer-booking/internal/infra/storage/consultation"
	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
)

// Fakes

type fakeConsultationRepo struct {
	byID    map[string]*domain.ConsultationRequest
	deleted []string
}

func newFakeConsultationRepo(items ...*domain.ConsultationRequest) *fakeConsultationRepo {
	f := &fakeConsultationRepo{byID: make(map[string]*domain.ConsultationRequest)}
	for _, item := range items {
		f.byID[item.ID] = item
	}
	return f
}

func (f *fakeConsultationRepo) GetByID(_ context.Context, id string) (*domain.ConsultationRequest, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, consultationRepo.ErrConsultationNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeConsultationRepo) GetByUser(_ context.Context, userID string, status *domain.ConsultationStatus) ([]*domain.ConsultationRequest, error) {
	var result []*domain.ConsultationRequest
	for _, c := range f.byID {
		if c.UserID != userID {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeConsultationRepo) GetWithFilter(_ context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error) {
	var result []*domain.ConsultationRequest
	for _, c := range f.byID {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeConsultationRepo) UpdateStatus(_ context.Context, id string, status domain.ConsultationStatus) error {
	c, ok := f.byID[id]
	if !ok {
		return consultationRepo.ErrConsultationNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeConsultationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return consultationRepo.ErrConsultationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBlockRepo struct {
	byRequestID map[string]*domain.Block
	err         error
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{byRequestID: make(map[string]*domain.Block)}
}

func (f *fakeBlockRepo) Upsert(_ context.Context, b *domain.Block) (*domain.Block, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *b
	out.CreatedAt = time.Now()
	f.byRequestID[b.RequestID] = &out
	return &out, nil
}

func (f *fakeBlockRepo) DeleteByRequestID(_ context.Context, requestID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.byRequestID, requestID)
	return nil
}

func (f *fakeBlockRepo) List(_ context.Context) ([]*domain.Block, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Block, 0, len(f.byRequestID))
	for _, b := range f.byRequestID {
		result = append(result, b)
	}
	return result, nil
}

type fakeCreditRepo struct {
	balances map[string]int
	err      error
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{balances: make(map[string]int)}
}

func (f *fakeCreditRepo) Adjust(_ context.Context, userID string, delta int) error {
	if f.err != nil {
		return f.err
	}
	next := f.balances[userID] + delta
	if next < 0 {
		next = 0
	}
	f.balances[userID] = next
	return nil
}

type fakeNotifyClient struct {
	events []string
}

func (f *fakeNotifyClient) SendBestEffort(_ context.Context, event string, _ map[string]interface{}) {
	f.events = append(f.events, event)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Helpers

func submittedConsultation(id, userID string) *domain.ConsultationRequest {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	return &domain.ConsultationRequest{
		ID:        id,
		UserID:    userID,
		PlanID:    "basic",
		Type:      domain.TypePhone,
		Title:     "계약 검토",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.StatusSubmitted,
	}
}

type fixture struct {
	svc          *Service
	requests     *fakeConsultationRepo
	blocks       *fakeBlockRepo
	credits      *fakeCreditRepo
	notifyClient *fakeNotifyClient
}

func newFixture(items ...*domain.ConsultationRequest) *fixture {
	f := &fixture{
		requests:     newFakeConsultationRepo(items...),
		blocks:       newFakeBlockRepo(),
		credits:      newFakeCreditRepo(),
		notifyClient: &fakeNotifyClient{},
	}
	f.svc = NewService(f.requests, f.blocks, f.credits, f.notifyClient, &fakeTxManager{}, nopLogger{})
	return f
}

// Tests

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	// Владелец видит свою заявку
	resp, err := f.svc.GetByID(context.Background(), "c1", "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ID)

	// Чужой пользователь - нет
	_, err = f.svc.GetByID(context.Background(), "c1", "user-2", false)
	require.ErrorIs(t, err, ErrAccessDenied)

	// Администратор видит любую
	resp, err = f.svc.GetByID(context.Background(), "c1", "admin", true)
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), "missing", "user-1", false)
	require.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestUpdateStatus_ConfirmCreatesBlock(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	err := f.svc.UpdateStatus(context.Background(), "c1", &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	// Ровно один блок, привязанный к заявке
	require.Len(t, f.blocks.byRequestID, 1)
	blk := f.blocks.byRequestID["c1"]
	require.NotNil(t, blk)
	assert.Equal(t, "blk_c1", blk.ID)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), blk.StartTime)

	// Уведомление о подтверждении после коммита
	assert.Equal(t, []string{"consult-confirmed"}, f.notifyClient.events)
}

func TestUpdateStatus_ReconfirmKeepsSingleBlock(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	// confirmed → confirmation_cancelled → confirmed
	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmation_cancelled"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))

	assert.Len(t, f.blocks.byRequestID, 1)
}

func TestUpdateStatus_CancelConfirmationRemovesBlock(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	require.Len(t, f.blocks.byRequestID, 1)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmation_cancelled"}))

	assert.Empty(t, f.blocks.byRequestID)
}

func TestUpdateStatus_DirectCancelFromConfirmedRejected(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))

	err := f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "cancelled"})

	// confirmed → cancelled запрещён машиной состояний
	require.ErrorIs(t, err, ErrInvalidTransition)
	// Блок остаётся, переход не случился
	assert.Len(t, f.blocks.byRequestID, 1)
}

func TestUpdateStatus_CompleteDebitsOneHourKeepsBlock(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))
	f.credits.balances["user-1"] = 12

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "completed"}))

	// Списан ровно один час
	assert.Equal(t, 11, f.credits.balances["user-1"])
	// Блок завершённой консультации не трогаем
	assert.Len(t, f.blocks.byRequestID, 1)
}

func TestUpdateStatus_CompleteWithZeroBalanceFloorsAtZero(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))
	f.credits.balances["user-1"] = 0

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "completed"}))

	assert.Equal(t, 0, f.credits.balances["user-1"])
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.ConsultationStatus
		to   string
	}{
		{name: "submitted нельзя завершить", from: domain.StatusSubmitted, to: "completed"},
		{name: "completed терминален", from: domain.StatusCompleted, to: "submitted"},
		{name: "cancelled терминален", from: domain.StatusCancelled, to: "confirmed"},
		{name: "confirmed нельзя отменить напрямую", from: domain.StatusConfirmed, to: "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := submittedConsultation("c1", "user-1")
			c.Status = tt.from
			f := newFixture(c)

			err := f.svc.UpdateStatus(context.Background(), "c1",
				&models.UpdateStatusRequest{Status: tt.to})

			require.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	err := f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "submitted"})

	require.NoError(t, err)
	assert.Empty(t, f.blocks.byRequestID)
	assert.Empty(t, f.notifyClient.events)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	err := f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "archived"})

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.UpdateStatus(context.Background(), "missing",
		&models.UpdateStatusRequest{Status: "confirmed"})

	require.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestUpdateStatus_BlockFailureAborts(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))
	f.blocks.err = errors.New("disk full")

	err := f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"})

	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.notifyClient.events)
}

func TestDelete_RemovesRequestAndBlock(t *testing.T) {
	f := newFixture(submittedConsultation("c1", "user-1"))

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	require.Len(t, f.blocks.byRequestID, 1)

	require.NoError(t, f.svc.Delete(context.Background(), "c1"))

	assert.Empty(t, f.blocks.byRequestID)
	assert.Equal(t, []string{"c1"}, f.requests.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestListBlocks(t *testing.T) {
	f := newFixture(
		submittedConsultation("c1", "user-1"),
		submittedConsultation("c2", "user-2"),
	)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c1",
		&models.UpdateStatusRequest{Status: "confirmed"}))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), "c2",
		&models.UpdateStatusRequest{Status: "confirmed"}))

	resp, err := f.svc.ListBlocks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
