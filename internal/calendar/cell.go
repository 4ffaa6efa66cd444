package calendar

import "time"

// CellKind базовая классификация ячейки календарной сетки
type CellKind string

const (
	// CellFiller пустая ячейка-заполнитель до первого числа месяца
	CellFiller CellKind = "filler"

	// CellPast дата в прошлом, недоступна независимо от занятости
	CellPast CellKind = "past"

	// CellOccupied дата помечена занятой
	CellOccupied CellKind = "occupied"

	// CellAvailable дата доступна для выбора
	CellAvailable CellKind = "available"
)

// Cell одна ячейка календарной сетки месяца
// Date == nil только у ячеек-заполнителей
type Cell struct {
	Date *time.Time
	Kind CellKind

	// Флаги поверх базовой классификации. Выставляются только для
	// доступных ячеек: выбранная дата остаётся available, выбор
	// дополняет стилизацию, а не заменяет её
	Today    bool
	Selected bool
}

// Interactive сообщает, реагирует ли ячейка на выбор
func (c Cell) Interactive() bool {
	return c.Kind == CellAvailable
}
