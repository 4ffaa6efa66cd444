package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// OccupiedDateResponse ответ с одной занятой датой
type OccupiedDateResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2025-12-25"
	CreatedAt time.Time `json:"createdAt"`
}

// OccupiedDateListResponse ответ со списком занятых дат
// Даты отсортированы по возрастанию
type OccupiedDateListResponse struct {
	Dates []OccupiedDateResponse `json:"dates"`
}

// FromDomainOccupiedDate конвертирует domain модель в DTO
func FromDomainOccupiedDate(od *domain.OccupiedDate) *OccupiedDateResponse {
	if od == nil {
		return nil
	}
	return &OccupiedDateResponse{
		ID:        od.ID,
		Date:      od.Date.Format(domain.DateFormat),
		CreatedAt: od.CreatedAt,
	}
}

// FromDomainOccupiedDateList конвертирует список domain моделей в DTO
func FromDomainOccupiedDateList(occupied []domain.OccupiedDate) *OccupiedDateListResponse {
	resp := &OccupiedDateListResponse{
		Dates: make([]OccupiedDateResponse, 0, len(occupied)),
	}
	for i := range occupied {
		resp.Dates = append(resp.Dates, *FromDomainOccupiedDate(&occupied[i]))
	}
	return resp
}
