package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid lead status")
)

// Request модели

// ListLeadsRequest запрос на получение лидов с фильтрацией
type ListLeadsRequest struct {
	Status   *string    `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	FromDate *time.Time `json:"fromDate,omitempty"` // Начало периода по дате создания (опционально)
	ToDate   *time.Time `json:"toDate,omitempty"`   // Конец периода по дате создания (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListLeadsRequest) ToDomainFilter() (domain.LeadsFilter, error) {
	filter := domain.LeadsFilter{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainLeadStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// TransitionStatusRequest запрос на смену статуса лида
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// LeadResponse ответ с данными лида
type LeadResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`

	EventType   *string `json:"eventType,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"` // "2025-12-25"
	GuestCount  *int    `json:"guestCount,omitempty"`
	BudgetRange *string `json:"budgetRange,omitempty"`
	Message     *string `json:"message,omitempty"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeadListResponse ответ со списком лидов
type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
}

// StatsResponse агрегированные счётчики по лидам
// Архивные лиды в счётчики статусов не входят
type StatsResponse struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Converted int `json:"converted"`
	Recent    int `json:"recent"` // Созданные за последние 30 дней
}

// Методы конвертации

// FromDomainLead конвертирует domain модель в DTO
func FromDomainLead(l *domain.Lead) *LeadResponse {
	if l == nil {
		return nil
	}

	resp := &LeadResponse{
		ID:          l.ID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		EventType:   l.EventType,
		GuestCount:  l.GuestCount,
		BudgetRange: l.BudgetRange,
		Message:     l.Message,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}

	if l.EventDate != nil {
		dateStr := l.EventDate.Format(domain.DateFormat)
		resp.EventDate = &dateStr
	}

	return resp
}

// FromDomainLeadList конвертирует список domain моделей в DTO
func FromDomainLeadList(leadList []*domain.Lead) *LeadListResponse {
	resp := &LeadListResponse{
		Leads: make([]LeadResponse, 0, len(leadList)),
	}

	for _, lead := range leadList {
		if leadResp := FromDomainLead(lead); leadResp != nil {
			resp.Leads = append(resp.Leads, *leadResp)
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.LeadStats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		New:       s.New,
		Contacted: s.Contacted,
		Converted: s.Converted,
		Recent:    s.Recent,
	}
}

// ToDomainLeadStatus конвертирует строку в domain.LeadStatus с валидацией
func ToDomainLeadStatus(status string) (domain.LeadStatus, error) {
	s := domain.LeadStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
