package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	leadRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/leads"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/leads/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
)

type mockLeadRepo struct {
	leads []*domain.Lead

	listFilter    *domain.LeadsFilter
	listErr       error
	updateCalled  bool
	updateErr     error
	deleteErr     error
	deletedIDs    []int64
	bulkDeleteErr error
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, leadRepo.ErrLeadNotFound
}

func (m *mockLeadRepo) List(ctx context.Context, filter domain.LeadsFilter) ([]*domain.Lead, error) {
	m.listFilter = &filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leads, nil
}

func (m *mockLeadRepo) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error) {
	m.updateCalled = true
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for _, l := range m.leads {
		if l.ID == id {
			updated := *l
			updated.Status = status
			updated.UpdatedAt = time.Now()
			return &updated, nil
		}
	}
	return nil, leadRepo.ErrLeadNotFound
}

func (m *mockLeadRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for _, l := range m.leads {
		if l.ID == id {
			return nil
		}
	}
	return leadRepo.ErrLeadNotFound
}

func (m *mockLeadRepo) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if m.bulkDeleteErr != nil {
		return 0, m.bulkDeleteErr
	}
	m.deletedIDs = ids

	var deleted int64
	for _, id := range ids {
		for _, l := range m.leads {
			if l.ID == id {
				deleted++
			}
		}
	}
	return deleted, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func leadWith(id int64, status domain.LeadStatus, createdAt time.Time) *domain.Lead {
	return &domain.Lead{
		ID:        id,
		Name:      "Лид",
		Email:     "lead@example.com",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -3, 0)
	recent := now.AddDate(0, 0, -5)

	// 10 лидов: 3 new, 2 contacted, 1 converted, 4 archived
	fixture := []*domain.Lead{
		leadWith(1, domain.StatusNew, recent),
		leadWith(2, domain.StatusNew, recent),
		leadWith(3, domain.StatusNew, old),
		leadWith(4, domain.StatusContacted, recent),
		leadWith(5, domain.StatusContacted, old),
		leadWith(6, domain.StatusConverted, old),
		leadWith(7, domain.StatusArchived, recent),
		leadWith(8, domain.StatusArchived, old),
		leadWith(9, domain.StatusArchived, old),
		leadWith(10, domain.StatusArchived, old),
	}

	stats := ComputeStats(fixture, now)

	// Архивные входят в total, но не в счётчики статусов
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 3, stats.New)
	assert.Equal(t, 2, stats.Contacted)
	assert.Equal(t, 1, stats.Converted)
	assert.Equal(t, 4, stats.Recent)
}

func TestComputeStats_RecentBoundaryInclusive(t *testing.T) {
	now := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

	onBoundary := leadWith(1, domain.StatusNew, now.AddDate(0, 0, -domain.RecentWindowDays))
	justOutside := leadWith(2, domain.StatusNew, now.AddDate(0, 0, -domain.RecentWindowDays).Add(-time.Second))

	stats := ComputeStats([]*domain.Lead{onBoundary, justOutside}, now)
	assert.Equal(t, 1, stats.Recent)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Equal(t, domain.LeadStats{}, stats)
}

func TestGet(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusContacted, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "contacted", resp.Status)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&mockLeadRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusNew, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListLeadsRequest{
		Status: ptr.Ptr("new"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Leads, 1)

	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusNew, *repo.listFilter.Status)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListLeadsRequest{
		Status: ptr.Ptr("pending"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	// До репозитория дело не дошло
	assert.Nil(t, repo.listFilter)
}

func TestTransitionStatus(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusNew, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.TransitionStatus(context.Background(), 1, &models.TransitionStatusRequest{Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, "contacted", resp.Status)
}

func TestTransitionStatus_SelfTransitionAllowed(t *testing.T) {
	// Граф переходов не ограничен: статус может смениться сам на себя
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusConverted, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.TransitionStatus(context.Background(), 1, &models.TransitionStatusRequest{Status: "converted"})
	require.NoError(t, err)
	assert.Equal(t, "converted", resp.Status)
}

func TestTransitionStatus_InvalidStatus(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusNew, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.TransitionStatus(context.Background(), 1, &models.TransitionStatusRequest{Status: "done"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	// Недопустимый статус отсекается до обращения к репозиторию
	assert.False(t, repo.updateCalled)
}

func TestTransitionStatus_NotFound(t *testing.T) {
	repo := &mockLeadRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.TransitionStatus(context.Background(), 99, &models.TransitionStatusRequest{Status: "contacted"})
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestDelete(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusNew, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrLeadNotFound)
}

func TestDeleteBulk(t *testing.T) {
	repo := &mockLeadRepo{leads: []*domain.Lead{
		leadWith(1, domain.StatusNew, time.Now()),
		leadWith(2, domain.StatusArchived, time.Now()),
	}}
	svc := NewService(repo, nopLogger{})

	// Отсутствующие ID не считаются ошибкой
	deleted, err := svc.DeleteBulk(context.Background(), []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, []int64{1, 2, 99}, repo.deletedIDs)
}

func TestDeleteBulk_EmptyList(t *testing.T) {
	svc := NewService(&mockLeadRepo{}, nopLogger{})

	_, err := svc.DeleteBulk(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats_RepositoryError(t *testing.T) {
	repo := &mockLeadRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
