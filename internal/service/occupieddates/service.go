package occupieddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	occupiedRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/occupieddates"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dates"
)

// Service сервис управления занятыми датами
type Service struct {
	repo   OccupiedDateRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса занятых дат
func NewService(repo OccupiedDateRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List получает все занятые даты по возрастанию
// Недоступность хранилища - отдельный сигнал, не пустой список
func (s *Service) List(ctx context.Context) (*models.OccupiedDateListResponse, error) {
	occupied, err := s.repo.ListAll(ctx)
	if err != nil {
		if errors.Is(err, occupiedRepo.ErrStoreUnavailable) {
			s.logger.Error("List: occupied dates store unavailable: %v", err)
			return nil, ErrStoreUnavailable
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d occupied dates", len(occupied))
	return models.FromDomainOccupiedDateList(occupied), nil
}

// Add помечает дату занятой
//
// Гонку одновременных пометок одной даты разрешает уникальный constraint
// в хранилище - его нарушение приходит сюда как ErrDateConflict.
// Никакой предварительной проверки существования здесь нет намеренно
func (s *Service) Add(ctx context.Context, date time.Time) (*models.OccupiedDateResponse, error) {
	s.logger.Info("Add: marking date %s as occupied", dates.FormatDate(date))

	od, err := s.repo.Create(ctx, date)
	if err != nil {
		switch {
		case errors.Is(err, occupiedRepo.ErrDateAlreadyOccupied):
			s.logger.Warn("Add: date %s is already occupied", dates.FormatDate(date))
			return nil, ErrDateConflict
		case errors.Is(err, occupiedRepo.ErrStoreUnavailable):
			s.logger.Error("Add: occupied dates store unavailable: %v", err)
			return nil, ErrStoreUnavailable
		default:
			s.logger.Error("Add: repository error: %v", err)
			return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Add: date %s marked occupied, id=%d", dates.FormatDate(date), od.ID)
	return models.FromDomainOccupiedDate(od), nil
}

// Remove снимает отметку занятости с даты
// Не идемпотентно: отсутствующая запись - это ErrDateNotFound
func (s *Service) Remove(ctx context.Context, date time.Time) error {
	s.logger.Info("Remove: unmarking date %s", dates.FormatDate(date))

	if err := s.repo.DeleteByDate(ctx, date); err != nil {
		switch {
		case errors.Is(err, occupiedRepo.ErrDateNotFound):
			s.logger.Warn("Remove: date %s is not occupied", dates.FormatDate(date))
			return ErrDateNotFound
		case errors.Is(err, occupiedRepo.ErrStoreUnavailable):
			s.logger.Error("Remove: occupied dates store unavailable: %v", err)
			return ErrStoreUnavailable
		default:
			s.logger.Error("Remove: repository error: %v", err)
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Remove: date %s unmarked", dates.FormatDate(date))
	return nil
}
