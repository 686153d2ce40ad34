package credit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/wang2185/daylawyer-booking/pkg/dbmetrics"
	"github.com/wang2185/daylawyer-booking/pkg/psqlbuilder"
)

const table = "credit_accounts"

// Repository репозиторий кредитных счетов (часы консультаций).
// Инвариант неотрицательности баланса зашит в write path:
// любое значение ниже нуля обрезается до нуля.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кредитов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Balance возвращает баланс пользователя в часах.
// Отсутствие счёта трактуется как нулевой баланс.
func (r *Repository) Balance(ctx context.Context, userID string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("hours").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Balance - build select query: %v", ErrBuildQuery, err)
	}

	var hours int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hours)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Balance - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Set устанавливает баланс пользователя (перезапись, floor на нуле)
func (r *Repository) Set(ctx context.Context, userID string, hours int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if hours < 0 {
		hours = 0
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_id", "hours").
		Values(userID, hours).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Adjust изменяет баланс на delta (может быть отрицательной).
// GREATEST(0, ...) гарантирует неотрицательный результат на записи.
func (r *Repository) Adjust(ctx context.Context, userID string, delta int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	initial := delta
	if initial < 0 {
		initial = 0
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("user_id", "hours").
		Values(userID, initial).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET hours = GREATEST(0, credit_accounts.hours + ?), updated_at = NOW()", delta).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Adjust - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Adjust - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
