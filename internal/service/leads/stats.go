package leads

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// ComputeStats считает агрегаты по уже загруженному списку лидов
//
// Архивные лиды входят в total, но не в счётчики статусов: они вне
// активной воронки. Recent - лиды, созданные за последние
// domain.RecentWindowDays дней, граница включается
func ComputeStats(leadList []*domain.Lead, now time.Time) domain.LeadStats {
	stats := domain.LeadStats{}
	recentCutoff := now.AddDate(0, 0, -domain.RecentWindowDays)

	for _, lead := range leadList {
		stats.Total++

		switch lead.Status {
		case domain.StatusNew:
			stats.New++
		case domain.StatusContacted:
			stats.Contacted++
		case domain.StatusConverted:
			stats.Converted++
		}

		if !lead.CreatedAt.Before(recentCutoff) {
			stats.Recent++
		}
	}

	return stats
}
