package occupieddates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	occupiedRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/occupieddates"
)

type mockOccupiedRepo struct {
	dates []domain.OccupiedDate

	listErr   error
	createErr error
	deleteErr error
}

func (m *mockOccupiedRepo) ListAll(ctx context.Context) ([]domain.OccupiedDate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.dates, nil
}

func (m *mockOccupiedRepo) Create(ctx context.Context, date time.Time) (*domain.OccupiedDate, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	od := domain.OccupiedDate{
		ID:        int64(len(m.dates) + 1),
		Date:      date,
		CreatedAt: time.Now(),
	}
	m.dates = append(m.dates, od)
	return &od, nil
}

func (m *mockOccupiedRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	return m.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList(t *testing.T) {
	repo := &mockOccupiedRepo{dates: []domain.OccupiedDate{
		{ID: 1, Date: time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Date: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Dates, 2)
	assert.Equal(t, "2025-07-20", resp.Dates[0].Date)
	assert.Equal(t, "2025-08-01", resp.Dates[1].Date)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	svc := NewService(&mockOccupiedRepo{}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestList_StoreUnavailable(t *testing.T) {
	// Недоступность хранилища - отдельный сигнал, не пустой список
	repo := &mockOccupiedRepo{listErr: occupiedRepo.ErrStoreUnavailable}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestAdd(t *testing.T) {
	svc := NewService(&mockOccupiedRepo{}, nopLogger{})

	resp, err := svc.Add(context.Background(), time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.Equal(t, int64(1), resp.ID)
}

func TestAdd_Conflict(t *testing.T) {
	// Конфликт приходит от уникального constraint-а хранилища
	repo := &mockOccupiedRepo{createErr: occupiedRepo.ErrDateAlreadyOccupied}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestAdd_StoreUnavailable(t *testing.T) {
	repo := &mockOccupiedRepo{createErr: occupiedRepo.ErrStoreUnavailable}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Add(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestRemove(t *testing.T) {
	svc := NewService(&mockOccupiedRepo{}, nopLogger{})

	err := svc.Remove(context.Background(), time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
}

func TestRemove_NotFound(t *testing.T) {
	// Не идемпотентно: снятие отметки с незанятой даты - ошибка
	repo := &mockOccupiedRepo{deleteErr: occupiedRepo.ErrDateNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateNotFound)
}

func TestRemove_InternalError(t *testing.T) {
	repo := &mockOccupiedRepo{deleteErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
