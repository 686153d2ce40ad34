package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
)

type fakeConsultationRepo struct {
	requests []*domain.ConsultationRequest
	err      error
}

func (f *fakeConsultationRepo) GetWithFilter(_ context.Context, _ domain.ConsultationFilter) ([]*domain.ConsultationRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.requests, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (f *fakeBlockRepo) ListByInterval(_ context.Context, _, _ time.Time) ([]*domain.Block, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

type fakeHolidayProvider struct {
	holidays holidayservice.HolidaySet
}

func (f *fakeHolidayProvider) GetHolidaysWithFallback(_ context.Context, _ int) holidayservice.HolidaySet {
	if f.holidays == nil {
		return holidayservice.NewHolidaySet(nil)
	}
	return f.holidays
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T, consultations *fakeConsultationRepo, blocks *fakeBlockRepo) (*UseCase, *time.Location) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	uc := NewUseCase(consultations, blocks, &fakeHolidayProvider{}, loc, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, 6, 9, 12, 0, 0, 0, loc),
	}
	return uc, loc
}

func TestExecute_CombinesBlocksAndRequests(t *testing.T) {
	consultations := &fakeConsultationRepo{}
	blocks := &fakeBlockRepo{}
	uc, loc := newTestUseCase(t, consultations, blocks)

	// Блок 09:00-10:00 и активная заявка 14:00-15:00
	blocks.blocks = []*domain.Block{
		{
			ID:        "blk_x",
			RequestID: "x",
			StartTime: time.Date(2025, 6, 10, 9, 0, 0, 0, loc),
			EndTime:   time.Date(2025, 6, 10, 10, 0, 0, 0, loc),
		},
	}
	consultations.requests = []*domain.ConsultationRequest{
		{
			ID:        "y",
			Type:      domain.TypeInPerson,
			StartTime: time.Date(2025, 6, 10, 14, 0, 0, 0, loc),
			EndTime:   time.Date(2025, 6, 10, 15, 0, 0, 0, loc),
			Status:    domain.StatusSubmitted,
		},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1",
		Date:   time.Date(2025, 6, 10, 0, 0, 0, 0, loc),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 7)
	assert.False(t, ContainsSlot(resp.Slots, time.Date(2025, 6, 10, 9, 0, 0, 0, loc)))
	assert.False(t, ContainsSlot(resp.Slots, time.Date(2025, 6, 10, 14, 0, 0, 0, loc)))
	assert.True(t, ContainsSlot(resp.Slots, time.Date(2025, 6, 10, 10, 0, 0, 0, loc)))
}

func TestExecute_ZeroDate(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeConsultationRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	blocks := &fakeBlockRepo{err: errors.New("connection refused")}
	uc, loc := newTestUseCase(t, &fakeConsultationRepo{}, blocks)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: "user-1",
		Date:   time.Date(2025, 6, 10, 0, 0, 0, 0, loc),
	})
	require.ErrorIs(t, err, ErrInternal)
}
