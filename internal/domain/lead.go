package domain

import "time"

// LeadStatus represents the status of a contact/booking lead
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusConverted LeadStatus = "converted"
	StatusArchived  LeadStatus = "archived"
)

// Lead represents a contact/booking form submission tracked through the
// admin funnel
type Lead struct {
	ID    int64
	Name  string
	Email string
	Phone *string

	// Event details from the booking form, all optional
	EventType   *string
	EventDate   *time.Time // Дата мероприятия (без времени)
	GuestCount  *int
	BudgetRange *string
	Message     *string

	Status LeadStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the lead is still in the active funnel
func (l *Lead) IsActive() bool {
	return l.Status != StatusArchived
}

// IsConverted returns true if the lead resulted in a booking
func (l *Lead) IsConverted() bool {
	return l.Status == StatusConverted
}

// LeadsFilter фильтр для выборки лидов
type LeadsFilter struct {
	Status   *LeadStatus // Фильтр по статусу (опционально)
	FromDate *time.Time  // Начало периода по created_at (опционально)
	ToDate   *time.Time  // Конец периода по created_at (опционально)
}

// LeadStats агрегированные счётчики по лидам
// Архивные лиды намеренно исключены из счётчиков по статусам:
// они вне активной воронки
type LeadStats struct {
	Total     int
	New       int
	Contacted int
	Converted int
	Recent    int // Лиды, созданные за последние RecentWindowDays дней
}

// ValidStatuses список допустимых статусов лида
var ValidStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusConverted,
	StatusArchived,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(status LeadStatus) bool {
	for _, valid := range ValidStatuses {
		if status == valid {
			return true
		}
	}
	return false
}
