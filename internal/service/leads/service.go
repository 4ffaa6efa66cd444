package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	leadRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/leads"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
)

// Service сервис админского жизненного цикла лидов
type Service struct {
	leadRepo LeadRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(leadRepo LeadRepository, logger Logger) *Service {
	return &Service{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// Get получает лид по ID
func (s *Service) Get(ctx context.Context, leadID int64) (*models.LeadResponse, error) {
	s.logger.Info("Get: fetching lead id=%d", leadID)

	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, leadRepo.ErrLeadNotFound) {
			s.logger.Warn("Get: lead id=%d not found", leadID)
			return nil, ErrLeadNotFound
		}
		s.logger.Error("Get: repository error for lead id=%d: %v", leadID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLead(lead), nil
}

// List получает лиды с фильтрацией по статусу и периоду создания
func (s *Service) List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error) {
	s.logger.Info("List: fetching leads, status=%v", req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	leadList, err := s.leadRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d leads", len(leadList))
	return models.FromDomainLeadList(leadList), nil
}

// TransitionStatus переводит лид в новый статус и обновляет updated_at
//
// Граф переходов намеренно не ограничен: любой статус может смениться на
// любой, включая самого себя. Админка - инструмент ручной коррекции,
// а не строгий workflow. Валидируется только принадлежность статуса enum-у
func (s *Service) TransitionStatus(ctx context.Context, leadID int64, req *models.TransitionStatusRequest) (*models.LeadResponse, error) {
	s.logger.Info("TransitionStatus: lead id=%d -> status=%s", leadID, req.Status)

	newStatus, err := models.ToDomainLeadStatus(req.Status)
	if err != nil {
		s.logger.Warn("TransitionStatus: invalid status=%s for lead id=%d", req.Status, leadID)
		return nil, ErrInvalidStatus
	}

	lead, err := s.leadRepo.UpdateStatus(ctx, leadID, newStatus)
	if err != nil {
		if errors.Is(err, leadRepo.ErrLeadNotFound) {
			s.logger.Warn("TransitionStatus: lead id=%d not found", leadID)
			return nil, ErrLeadNotFound
		}
		s.logger.Error("TransitionStatus: repository error for lead id=%d: %v", leadID, err)
		return nil, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TransitionStatus: lead id=%d moved to status=%s", leadID, newStatus)
	return models.FromDomainLead(lead), nil
}

// Delete удаляет лид (жёсткое удаление, без tombstone)
// Уже отправленные уведомления не отзываются
func (s *Service) Delete(ctx context.Context, leadID int64) error {
	s.logger.Info("Delete: deleting lead id=%d", leadID)

	if err := s.leadRepo.Delete(ctx, leadID); err != nil {
		if errors.Is(err, leadRepo.ErrLeadNotFound) {
			s.logger.Warn("Delete: lead id=%d not found", leadID)
			return ErrLeadNotFound
		}
		s.logger.Error("Delete: repository error for lead id=%d: %v", leadID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: lead id=%d deleted", leadID)
	return nil
}

// DeleteBulk удаляет несколько лидов одним запросом
// Возвращает количество фактически удалённых записей; отсутствующие ID
// не считаются ошибкой
func (s *Service) DeleteBulk(ctx context.Context, ids []int64) (int64, error) {
	s.logger.Info("DeleteBulk: deleting %d leads", len(ids))

	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: empty id list", ErrInvalidInput)
	}

	deleted, err := s.leadRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("DeleteBulk: repository error: %v", err)
		return 0, fmt.Errorf("%w: DeleteBulk - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBulk: deleted %d of %d leads", deleted, len(ids))
	return deleted, nil
}

// Stats считает агрегаты по всем лидам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: computing lead stats")

	leadList, err := s.leadRepo.List(ctx, domain.LeadsFilter{})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := ComputeStats(leadList, time.Now())

	s.logger.Info("Stats: total=%d, new=%d, contacted=%d, converted=%d, recent=%d",
		stats.Total, stats.New, stats.Contacted, stats.Converted, stats.Recent)
	return models.FromDomainStats(stats), nil
}
