package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	"github.com/wang2185/daylawyer-booking/internal/service/reports/models"
)

// Service сервис отчётности: агрегирует завершённые консультации
// по месяцам или кварталам (по времени начала в часовом поясе кабинета).
type Service struct {
	consultationRepo ConsultationRepository
	location         *time.Location
	logger           Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(consultationRepo ConsultationRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		consultationRepo: consultationRepo,
		location:         location,
		logger:           logger,
	}
}

// Completed строит отчёт по завершённым консультациям за все время.
// period принимает models.PeriodMonthly или models.PeriodQuarterly.
func (s *Service) Completed(ctx context.Context, period string) (*models.ReportResponse, error) {
	s.logger.Info("Completed: building %s report", period)

	keyFn, err := periodKeyFunc(period)
	if err != nil {
		s.logger.Warn("Completed: invalid period=%s", period)
		return nil, err
	}

	status := domain.StatusCompleted
	consultations, err := s.consultationRepo.GetWithFilter(ctx, domain.ConsultationFilter{Status: &status})
	if err != nil {
		s.logger.Error("Completed: repository error: %v", err)
		return nil, fmt.Errorf("%w: Completed - repository error: %v", ErrInternal, err)
	}

	counts := make(map[string]int)
	for _, c := range consultations {
		counts[keyFn(c.StartTime.In(s.location))]++
	}

	rows := make([]*models.ReportRow, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, &models.ReportRow{Period: key, Completed: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	return &models.ReportResponse{Period: period, Rows: rows}, nil
}

// periodKeyFunc возвращает функцию ключа периода для времени начала
func periodKeyFunc(period string) (func(time.Time) string, error) {
	switch period {
	case models.PeriodMonthly:
		return func(t time.Time) string {
			return t.Format("2006-01")
		}, nil
	case models.PeriodQuarterly:
		return func(t time.Time) string {
			quarter := (int(t.Month())-1)/3 + 1
			return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
		}, nil
	default:
		return nil, ErrInvalidPeriod
	}
}
