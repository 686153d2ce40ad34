package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/pkg/dbmetrics"
	"github.com/wang2185/daylawyer-booking/pkg/psqlbuilder"
)

const table = "blocks"

var columns = []string{
	"id",
	"request_id",
	"title",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий календарных блоков
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блоков
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает блок для заявки. Повторное подтверждение той же заявки
// не плодит дубликаты: request_id уникален, интервал перезаписывается.
func (r *Repository) Upsert(ctx context.Context, b *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "request_id", "title", "start_time", "end_time").
		Values(b.ID, b.RequestID, b.Title, b.StartTime, b.EndTime).
		Suffix("ON CONFLICT (request_id) DO UPDATE SET title = EXCLUDED.title, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// DeleteByRequestID удаляет блок, связанный с заявкой, если он есть.
// Отсутствие блока не ошибка: снятие подтверждения идемпотентно.
func (r *Repository) DeleteByRequestID(ctx context.Context, requestID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"request_id": requestID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByRequestID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByRequestID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByRequestID получает блок по ID заявки
func (r *Repository) GetByRequestID(ctx context.Context, requestID string) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"request_id": requestID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Block
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.RequestID, &b.Title, &b.StartTime, &b.EndTime, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequestID - scan block: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

// List получает все блоки, упорядоченные по началу интервала
func (r *Repository) List(ctx context.Context) ([]*domain.Block, error) {
	return r.list(ctx, psqlbuilder.Select(columns...).From(table).OrderBy("start_time ASC"))
}

// ListByInterval получает блоки, пересекающие интервал [from, to).
// Внутри транзакции выборка блокируется (FOR UPDATE) - сериализация
// проверки занятости при создании заявки.
func (r *Repository) ListByInterval(ctx context.Context, from, to time.Time) ([]*domain.Block, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, selectBuilder)
}

func (r *Repository) list(ctx context.Context, selectBuilder squirrel.SelectBuilder) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		var createdAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.RequestID, &b.Title, &b.StartTime, &b.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: list - scan block: %v", ErrScanRow, err)
		}
		b.CreatedAt = createdAt.Time
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
