package consultation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/pkg/dbmetrics"
	"github.com/wang2185/daylawyer-booking/pkg/psqlbuilder"
)

const table = "consultation_requests"

var columns = []string{
	"id",
	"user_id",
	"plan_id",
	"type",
	"title",
	"details",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на консультацию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, req *domain.ConsultationRequest) (*domain.ConsultationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"user_id",
			"plan_id",
			"type",
			"title",
			"details",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			req.ID,
			req.UserID,
			req.PlanID,
			req.Type,
			req.Title,
			req.Details,
			req.StartTime,
			req.EndTime,
			req.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	req, err := scanConsultation(row)
	if err == sql.ErrNoRows {
		return nil, ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consultation: %v", ErrScanRow, err)
	}

	return req, nil
}

// GetByUser получает заявки пользователя, новые первыми
func (r *Repository) GetByUser(ctx context.Context, userID string, status *domain.ConsultationStatus) ([]*domain.ConsultationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// GetWithFilter получает заявки с гибкой фильтрацией.
// Для Occupying-выборки внутри транзакции добавляется FOR UPDATE -
// сериализация проверки доступности слота при создании заявки.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ConsultationFilter) ([]*domain.ConsultationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.Occupying {
		// Текстовые консультации не занимают календарь,
		// отменённые заявки - тоже
		selectBuilder = selectBuilder.
			Where(squirrel.NotEq{"status": domain.StatusCancelled}).
			Where(squirrel.NotEq{"type": domain.TypeText})
	}

	if filter.UserID != nil {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("start_time ASC, created_at DESC")
	}

	if filter.Occupying && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConsultationNotFound
	}

	return nil
}

// Delete удаляет заявку безвозвратно (административное удаление,
// отличное от смены статуса на "отменена")
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConsultationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConsultation(row rowScanner) (*domain.ConsultationRequest, error) {
	var req domain.ConsultationRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.PlanID,
		&req.Type,
		&req.Title,
		&req.Details,
		&req.StartTime,
		&req.EndTime,
		&req.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time
	return &req, nil
}

func scanConsultations(rows *sql.Rows) ([]*domain.ConsultationRequest, error) {
	result := make([]*domain.ConsultationRequest, 0)
	for rows.Next() {
		req, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan consultation: %v", ErrScanRow, err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}
	return result, nil
}
