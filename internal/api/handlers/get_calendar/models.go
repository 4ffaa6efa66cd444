package get_calendar

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/calendar"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dates"
)

// CellResponse одна ячейка сетки месяца
// Date == nil у ячеек-заполнителей перед первым числом
type CellResponse struct {
	Date        *string `json:"date"` // "2026-03-01" или null
	Kind        string  `json:"kind"` // filler | past | occupied | available
	Today       bool    `json:"today,omitempty"`
	Selected    bool    `json:"selected,omitempty"`
	Interactive bool    `json:"interactive"`
}

// CalendarResponse классифицированная сетка месяца
// Cells - плоская последовательность: ведущие заполнители, затем дни
// месяца. Разбиение на недели по 7 - забота клиента
type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CellResponse `json:"cells"`
}

// FromEngine строит HTTP response из движка календаря
func FromEngine(engine *calendar.Engine) *CalendarResponse {
	year, month := engine.Visible()
	cells := engine.Cells()

	resp := &CalendarResponse{
		Year:  year,
		Month: int(month),
		Cells: make([]CellResponse, 0, len(cells)),
	}

	for _, cell := range cells {
		cr := CellResponse{
			Kind:        string(cell.Kind),
			Today:       cell.Today,
			Selected:    cell.Selected,
			Interactive: cell.Interactive(),
		}
		if cell.Date != nil {
			dateStr := dates.FormatDate(*cell.Date)
			cr.Date = &dateStr
		}
		resp.Cells = append(resp.Cells, cr)
	}

	return resp
}
