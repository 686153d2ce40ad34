package consultation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/pkg/dbmetrics"
	"github.com/wang2185/daylawyer-booking/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock, db
}

func consultationRow(id string, start time.Time, status domain.ConsultationStatus) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(id, "user-1", "basic", "phone", "계약 검토", "", start, start.Add(time.Hour), string(status), start, start)
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newMock(t)

	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO consultation_requests \(id,user_id,plan_id,type,title,details,start_time,end_time,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\) RETURNING created_at, updated_at`).
		WithArgs("c1", "user-1", "basic", "phone", "계약 검토", "", start, start.Add(time.Hour), "submitted").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))

	created, err := repo.Create(context.Background(), &domain.ConsultationRequest{
		ID:        "c1",
		UserID:    "user-1",
		PlanID:    "basic",
		Type:      domain.TypePhone,
		Title:     "계약 검토",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.StatusSubmitted,
	})

	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, createdAt, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM consultation_requests WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestGetByUser_StatusFilter(t *testing.T) {
	repo, mock, _ := newMock(t)

	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM consultation_requests WHERE user_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WithArgs("user-1", "confirmed").
		WillReturnRows(consultationRow("c1", start, domain.StatusConfirmed))

	list, err := repo.GetByUser(context.Background(), "user-1", ptr.Ptr(domain.StatusConfirmed))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusConfirmed, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter_OccupyingPredicate(t *testing.T) {
	repo, mock, _ := newMock(t)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(10 * time.Hour)

	// Занятость календаря: отменённые и текстовые заявки не считаются.
	// Вне транзакции выборка не блокирует строки.
	mock.ExpectQuery(`SELECT .+ FROM consultation_requests WHERE start_time >= \$1 AND start_time < \$2 AND status <> \$3 AND type <> \$4 ORDER BY start_time ASC, created_at DESC$`).
		WithArgs(from, to, "cancelled", "text").
		WillReturnRows(consultationRow("c1", start, domain.StatusSubmitted))

	list, err := repo.GetWithFilter(context.Background(), domain.ConsultationFilter{
		From:      &from,
		To:        &to,
		Occupying: true,
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter_OccupyingInTransactionLocksRows(t *testing.T) {
	repo, mock, db := newMock(t)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM consultation_requests WHERE start_time >= \$1 AND start_time < \$2 AND status <> \$3 AND type <> \$4 ORDER BY start_time ASC, created_at DESC FOR UPDATE$`).
		WithArgs(from, to, "cancelled", "text").
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.GetWithFilter(ctx, domain.ConsultationFilter{
		From:      &from,
		To:        &to,
		Occupying: true,
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(`UPDATE consultation_requests SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("confirmed", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "c1", domain.StatusConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(`UPDATE consultation_requests SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs("confirmed", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	require.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec(`DELETE FROM consultation_requests WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrConsultationNotFound)
}
