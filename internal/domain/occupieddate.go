package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/dates"
)

// OccupiedDate represents a calendar date marked unavailable for new
// bookings. At most one record exists per calendar date - the uniqueness
// is enforced by the storage layer
type OccupiedDate struct {
	ID        int64
	Date      time.Time // Дата без времени
	CreatedAt time.Time
}

// IsOccupied проверяет вхождение даты в уже загруженный список занятых дат
// Сравнение по форматированным строкам дат, чтобы не зависеть от времени
// суток и часового пояса записей
func IsOccupied(date time.Time, occupied []OccupiedDate) bool {
	key := dates.FormatDate(date)
	for _, od := range occupied {
		if dates.FormatDate(od.Date) == key {
			return true
		}
	}
	return false
}
