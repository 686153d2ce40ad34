package block

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wang2185/daylawyer-booking/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newMock(t)

	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO blocks \(id,request_id,title,start_time,end_time\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(request_id\) DO UPDATE SET title = EXCLUDED\.title.+RETURNING created_at`).
		WithArgs("blk_c1", "c1", "상담(phone)", start, start.Add(time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	b, err := repo.Upsert(context.Background(), &domain.Block{
		ID:        "blk_c1",
		RequestID: "c1",
		Title:     "상담(phone)",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, createdAt, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByRequestID_Idempotent(t *testing.T) {
	repo, mock := newMock(t)

	// Нулевое число строк не ошибка: снятие подтверждения идемпотентно
	mock.ExpectExec(`DELETE FROM blocks WHERE request_id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByRequestID(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByRequestID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM blocks WHERE request_id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByRequestID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBlockNotFound)
}

func TestListByInterval(t *testing.T) {
	repo, mock := newMock(t)

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow("blk_c1", "c1", "상담(phone)", start, start.Add(time.Hour), start)

	// Интервальный предикат: start_time < to AND end_time > from
	mock.ExpectQuery(`SELECT .+ FROM blocks WHERE start_time < \$1 AND end_time > \$2 ORDER BY start_time ASC`).
		WithArgs(to, from).
		WillReturnRows(rows)

	blocks, err := repo.ListByInterval(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "c1", blocks[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM blocks ORDER BY start_time ASC`).
		WillReturnRows(sqlmock.NewRows(columns))

	blocks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
