package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dates"
)

// LoadState состояние загрузки занятых дат
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// Engine календарь бронирования на один пользовательский сеанс
//
// Владеет видимым месяцем, загруженным списком занятых дат и выбранной
// датой. Состояние принадлежит одному сеансу и между сеансами не
// разделяется, поэтому синхронизация не нужна.
//
// Занятые даты загружаются один раз на весь календарь: набор глобальный
// и заведомо небольшой, перелистывание месяцев его не перечитывает
type Engine struct {
	provider     OccupiedDatesProvider
	timeProvider TimeProvider
	logger       Logger

	year  int
	month time.Month

	state    LoadState
	occupied []domain.OccupiedDate
	selected *time.Time

	// onSelect вызывается при каждом успешном выборе даты
	onSelect func(time.Time)
}

// Option настройка движка календаря
type Option func(*Engine)

// WithMonth задает начальный видимый месяц вместо текущего
func WithMonth(year int, month time.Month) Option {
	return func(e *Engine) {
		e.year = year
		e.month = month
	}
}

// WithSelected задает внешне выбранную дату
func WithSelected(date time.Time) Option {
	return func(e *Engine) {
		d := dates.Truncate(date)
		e.selected = &d
	}
}

// WithOnSelect задает callback успешного выбора даты
func WithOnSelect(fn func(time.Time)) Option {
	return func(e *Engine) {
		e.onSelect = fn
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func WithTimeProvider(tp TimeProvider) Option {
	return func(e *Engine) {
		e.timeProvider = tp
	}
}

// NewEngine создает движок календаря в состоянии loading на текущем месяце
func NewEngine(provider OccupiedDatesProvider, logger Logger, opts ...Option) *Engine {
	e := &Engine{
		provider:     provider,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		state:        StateLoading,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.year == 0 {
		now := e.timeProvider.Now()
		e.year = now.Year()
		e.month = now.Month()
	}

	return e
}

// Load загружает занятые даты
// loading -> ready при успехе, loading -> failed при ошибке хранилища
func (e *Engine) Load(ctx context.Context) error {
	e.state = StateLoading

	occupied, err := e.provider.ListAll(ctx)
	if err != nil {
		e.state = StateFailed
		e.logger.Error("Calendar: failed to load occupied dates: %v", err)
		return err
	}

	e.occupied = occupied
	e.state = StateReady
	e.logger.Info("Calendar: loaded %d occupied dates", len(occupied))
	return nil
}

// Retry повторяет загрузку после ошибки
func (e *Engine) Retry(ctx context.Context) error {
	return e.Load(ctx)
}

// State возвращает текущее состояние загрузки
func (e *Engine) State() LoadState {
	return e.state
}

// Visible возвращает видимый месяц
func (e *Engine) Visible() (int, time.Month) {
	return e.year, e.month
}

// Selected возвращает выбранную дату или nil
func (e *Engine) Selected() *time.Time {
	return e.selected
}

// Navigate перелистывает видимый месяц на delta (-1 или +1)
// Занятые даты не перечитываются
func (e *Engine) Navigate(delta int) {
	e.year, e.month = dates.AddMonths(e.year, e.month, delta)
}

// Select применяет политику выбора даты
// Выбор игнорируется (состояние не меняется), если:
//   - дата nil (ячейка-заполнитель)
//   - календарь не в состоянии ready
//   - дата в прошлом
//   - дата занята
//
// Возвращает true, если выбор принят
func (e *Engine) Select(date *time.Time) bool {
	if date == nil {
		return false
	}
	if e.state != StateReady {
		return false
	}

	now := e.timeProvider.Now()
	if dates.IsPast(*date, now) {
		return false
	}
	if domain.IsOccupied(*date, e.occupied) {
		return false
	}

	d := dates.Truncate(*date)
	e.selected = &d

	if e.onSelect != nil {
		e.onSelect(d)
	}
	return true
}

// Cells строит классифицированную сетку видимого месяца
//
// Порядок классификации: заполнитель > прошлое > занято > доступно.
// Флаги today/selected дополняют только доступные ячейки.
//
// Пока занятые даты не загружены (loading или failed), все будущие даты
// классифицируются как занятые - сетка целиком неинтерактивна,
// частично загруженный календарь не показывается
func (e *Engine) Cells() []Cell {
	grid := dates.BuildMonthGrid(e.year, e.month)
	now := e.timeProvider.Now()

	cells := make([]Cell, 0, len(grid))
	for _, date := range grid {
		cells = append(cells, e.classify(date, now))
	}
	return cells
}

func (e *Engine) classify(date *time.Time, now time.Time) Cell {
	if date == nil {
		return Cell{Kind: CellFiller}
	}

	if dates.IsPast(*date, now) {
		return Cell{Date: date, Kind: CellPast}
	}

	// Без загруженного набора занятых дат ячейка не может считаться
	// доступной: помечаем занятой, чтобы она была неинтерактивной
	if e.state != StateReady || domain.IsOccupied(*date, e.occupied) {
		return Cell{Date: date, Kind: CellOccupied}
	}

	cell := Cell{Date: date, Kind: CellAvailable}
	cell.Today = dates.IsToday(*date, now)
	if e.selected != nil {
		cell.Selected = dates.IsSameDay(*date, *e.selected)
	}
	return cell
}
