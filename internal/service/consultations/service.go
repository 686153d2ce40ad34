package consultations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wang2185/daylawyer-booking/internal/domain"
	consultationRepo "github.com/wang2185/daylawyer-booking/internal/infra/storage/consultation"
	"github.com/wang2185/daylawyer-booking/internal/integrations/notifyservice"
	"github.com/wang2185/daylawyer-booking/internal/service/consultations/models"
	"github.com/wang2185/daylawyer-booking/pkg/ptr"
)

// Service сервис жизненного цикла заявок на консультацию.
// Владеет побочными эффектами административных переходов:
// подтверждение создаёт блок, завершение списывает кредит,
// снятие подтверждения удаляет блок.
type Service struct {
	consultationRepo ConsultationRepository
	blockRepo        BlockRepository
	creditRepo       CreditRepository
	notifyClient     NotifyClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	consultationRepo ConsultationRepository,
	blockRepo BlockRepository,
	creditRepo CreditRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		consultationRepo: consultationRepo,
		blockRepo:        blockRepo,
		creditRepo:       creditRepo,
		notifyClient:     notifyClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID получает заявку по ID.
// Пользователь видит только свою заявку; администратор - любую.
func (s *Service) GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.ConsultationResponse, error) {
	s.logger.Info("GetByID: fetching consultation id=%s for user=%s", id, userID)

	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			s.logger.Warn("GetByID: consultation id=%s not found", id)
			return nil, ErrConsultationNotFound
		}
		s.logger.Error("GetByID: repository error for consultation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && consultation.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to consultation id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainConsultation(consultation), nil
}

// GetByUser получает заявки пользователя, новые первыми
func (s *Service) GetByUser(ctx context.Context, userID string, status *string) (*models.ConsultationListResponse, error) {
	s.logger.Info("GetByUser: fetching consultations for user=%s, status=%v", userID, status)

	var domainStatus *domain.ConsultationStatus
	if status != nil {
		st, err := models.ToDomainConsultationStatus(*status)
		if err != nil {
			s.logger.Warn("GetByUser: invalid status=%s for user=%s", *status, userID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = ptr.Ptr(st)
	}

	consultations, err := s.consultationRepo.GetByUser(ctx, userID, domainStatus)
	if err != nil {
		s.logger.Error("GetByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConsultationList(consultations), nil
}

// List получает все заявки (административный список)
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ConsultationListResponse, error) {
	s.logger.Info("List: fetching consultations, status=%v", req.Status)

	filter := domain.ConsultationFilter{}
	if req.Status != nil {
		st, err := models.ToDomainConsultationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = ptr.Ptr(st)
	}

	consultations, err := s.consultationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConsultationList(consultations), nil
}

// UpdateStatus выполняет административный переход статуса заявки
// вместе с его побочными эффектами, атомарно:
//
//   - → confirmed: создаётся блок календаря (ровно один на заявку),
//     после коммита отправляется уведомление consult-confirmed
//   - confirmed → confirmation_cancelled: блок заявки удаляется
//   - → completed: списывается 1 час кредита (floor на нуле),
//     блок НЕ трогается
//
// Возврат завершённой заявки в ранний статус час НЕ возвращает.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating consultation id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainConsultationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for consultation id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	var confirmed *domain.ConsultationRequest

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		consultation, err := s.consultationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
				s.logger.Warn("UpdateStatus: consultation id=%s not found", id)
				return ErrConsultationNotFound
			}
			s.logger.Error("UpdateStatus: repository error for consultation id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if consultation.Status == newStatus {
			// Повторная установка того же статуса - no-op
			return nil
		}

		if !consultation.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s → %s not allowed for consultation id=%s",
				consultation.Status, newStatus, id)
			return ErrInvalidTransition
		}

		wasConfirmed := consultation.Status == domain.StatusConfirmed

		if err := s.consultationRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			s.logger.Error("UpdateStatus: failed to update status for consultation id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - update status: %v", ErrInternal, err)
		}

		switch {
		case newStatus == domain.StatusConfirmed:
			blk := domain.NewBlockFromRequest(consultation, blockTitle(consultation))
			if _, err := s.blockRepo.Upsert(txCtx, blk); err != nil {
				s.logger.Error("UpdateStatus: failed to create block for consultation id=%s: %v", id, err)
				return fmt.Errorf("%w: UpdateStatus - create block: %v", ErrInternal, err)
			}
			confirmed = consultation

		case wasConfirmed && newStatus != domain.StatusCompleted:
			// confirmation_cancelled / cancelled / submitted из confirmed:
			// блок заявки снимается
			if err := s.blockRepo.DeleteByRequestID(txCtx, id); err != nil {
				s.logger.Error("UpdateStatus: failed to remove block for consultation id=%s: %v", id, err)
				return fmt.Errorf("%w: UpdateStatus - remove block: %v", ErrInternal, err)
			}
		}

		if newStatus == domain.StatusCompleted {
			if err := s.creditRepo.Adjust(txCtx, consultation.UserID, -1); err != nil {
				s.logger.Error("UpdateStatus: failed to debit credit for user=%s: %v", consultation.UserID, err)
				return fmt.Errorf("%w: UpdateStatus - debit credit: %v", ErrInternal, err)
			}
			s.logger.Info("UpdateStatus: debited 1 hour from user=%s for consultation id=%s",
				consultation.UserID, id)
		}

		return nil
	})

	if err != nil {
		return err
	}

	// Уведомление после коммита: неудача доставки не откатывает переход
	if confirmed != nil {
		s.notifyClient.SendBestEffort(ctx, notifyservice.EventConsultConfirmed, map[string]interface{}{
			"email": confirmed.UserID,
			"start": confirmed.StartTime.Format(time.RFC3339),
			"end":   confirmed.EndTime.Format(time.RFC3339),
			"type":  string(confirmed.Type),
		})
	}

	s.logger.Info("UpdateStatus: successfully updated consultation id=%s to status=%s", id, newStatus)
	return nil
}

// Delete безвозвратно удаляет заявку вместе с её блоком (если есть).
// Доступно из любого статуса - отдельная операция, не смена статуса.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting consultation id=%s", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.blockRepo.DeleteByRequestID(txCtx, id); err != nil {
			s.logger.Error("Delete: failed to remove block for consultation id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - remove block: %v", ErrInternal, err)
		}

		if err := s.consultationRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
				s.logger.Warn("Delete: consultation id=%s not found", id)
				return ErrConsultationNotFound
			}
			s.logger.Error("Delete: repository error for consultation id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted consultation id=%s", id)
	return nil
}

// ListBlocks получает все календарные блоки (панель администратора)
func (s *Service) ListBlocks(ctx context.Context) (*models.BlockListResponse, error) {
	blocks, err := s.blockRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// blockTitle заголовок блока в панели администратора
func blockTitle(r *domain.ConsultationRequest) string {
	return fmt.Sprintf("상담(%s)", r.Type)
}
