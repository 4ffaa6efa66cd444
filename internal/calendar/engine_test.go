package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

type mockProvider struct {
	occupied []domain.OccupiedDate
	err      error
	calls    int
}

func (m *mockProvider) ListAll(ctx context.Context) ([]domain.OccupiedDate, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.occupied, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func occupiedOn(ds ...time.Time) []domain.OccupiedDate {
	out := make([]domain.OccupiedDate, 0, len(ds))
	for i, d := range ds {
		out = append(out, domain.OccupiedDate{ID: int64(i + 1), Date: d})
	}
	return out
}

func TestEngine_Cells_Classification(t *testing.T) {
	// Сегодня 10 июля 2025, занято 20 июля, выбрано 25 июля
	now := &fixedTime{now: day(2025, time.July, 10)}
	provider := &mockProvider{occupied: occupiedOn(day(2025, time.July, 20))}

	e := NewEngine(provider, nopLogger{},
		WithMonth(2025, time.July),
		WithSelected(day(2025, time.July, 25)),
		WithTimeProvider(now),
	)
	require.NoError(t, e.Load(context.Background()))
	require.Equal(t, StateReady, e.State())

	cells := e.Cells()
	// 1 июля 2025 - вторник: 2 заполнителя + 31 день
	require.Len(t, cells, 33)

	cellFor := func(d int) Cell { return cells[2+d-1] }

	// Заполнители до первого числа
	assert.Equal(t, CellFiller, cells[0].Kind)
	assert.Equal(t, CellFiller, cells[1].Kind)
	assert.Nil(t, cells[0].Date)
	assert.False(t, cells[0].Interactive())

	// Прошлое сильнее занятости и доступности
	assert.Equal(t, CellPast, cellFor(5).Kind)
	assert.False(t, cellFor(5).Interactive())

	// Сегодняшний день доступен и помечен
	assert.Equal(t, CellAvailable, cellFor(10).Kind)
	assert.True(t, cellFor(10).Today)
	assert.True(t, cellFor(10).Interactive())

	// Занятая дата
	assert.Equal(t, CellOccupied, cellFor(20).Kind)
	assert.False(t, cellFor(20).Interactive())

	// Выбранная дата остаётся доступной, флаг дополняет
	assert.Equal(t, CellAvailable, cellFor(25).Kind)
	assert.True(t, cellFor(25).Selected)
	assert.False(t, cellFor(25).Today)

	// Обычный будущий день
	assert.Equal(t, CellAvailable, cellFor(15).Kind)
	assert.False(t, cellFor(15).Today)
	assert.False(t, cellFor(15).Selected)
}

func TestEngine_Cells_BeforeLoad_FutureDatesNotInteractive(t *testing.T) {
	now := &fixedTime{now: day(2025, time.July, 10)}
	provider := &mockProvider{}

	e := NewEngine(provider, nopLogger{},
		WithMonth(2025, time.July),
		WithTimeProvider(now),
	)
	// Load не вызывался: движок в состоянии loading
	require.Equal(t, StateLoading, e.State())

	for _, cell := range e.Cells() {
		if cell.Kind == CellFiller || cell.Kind == CellPast {
			continue
		}
		// Без загруженного набора дат будущие ячейки помечаются занятыми
		assert.Equal(t, CellOccupied, cell.Kind)
		assert.False(t, cell.Interactive())
	}
}

func TestEngine_LoadFailure_AndRetry(t *testing.T) {
	provider := &mockProvider{err: errors.New("store down")}

	e := NewEngine(provider, nopLogger{},
		WithMonth(2025, time.July),
		WithTimeProvider(&fixedTime{now: day(2025, time.July, 10)}),
	)

	require.Error(t, e.Load(context.Background()))
	assert.Equal(t, StateFailed, e.State())

	// В состоянии failed выбор не работает
	d := day(2025, time.July, 15)
	assert.False(t, e.Select(&d))
	assert.Nil(t, e.Selected())

	// После устранения ошибки Retry переводит движок в ready
	provider.err = nil
	provider.occupied = occupiedOn(day(2025, time.July, 20))
	require.NoError(t, e.Retry(context.Background()))
	assert.Equal(t, StateReady, e.State())
	assert.True(t, e.Select(&d))
}

func TestEngine_Select_Policy(t *testing.T) {
	now := &fixedTime{now: day(2025, time.July, 10)}
	provider := &mockProvider{occupied: occupiedOn(day(2025, time.July, 20))}

	var selected []time.Time
	e := NewEngine(provider, nopLogger{},
		WithMonth(2025, time.July),
		WithTimeProvider(now),
		WithOnSelect(func(d time.Time) { selected = append(selected, d) }),
	)
	require.NoError(t, e.Load(context.Background()))

	// nil - ячейка-заполнитель
	assert.False(t, e.Select(nil))

	// Прошлое
	past := day(2025, time.July, 5)
	assert.False(t, e.Select(&past))

	// Занято
	occupied := day(2025, time.July, 20)
	assert.False(t, e.Select(&occupied))

	// Отклонённые выборы не трогают состояние и callback
	assert.Nil(t, e.Selected())
	assert.Empty(t, selected)

	// Сегодняшний день можно выбрать
	today := day(2025, time.July, 10)
	assert.True(t, e.Select(&today))
	require.NotNil(t, e.Selected())
	assert.Equal(t, today, *e.Selected())
	require.Len(t, selected, 1)
	assert.Equal(t, today, selected[0])

	// Повторный выбор другой даты заменяет предыдущий
	other := day(2025, time.July, 15)
	assert.True(t, e.Select(&other))
	assert.Equal(t, other, *e.Selected())
	assert.Len(t, selected, 2)
}

func TestEngine_Navigate_NoRefetch(t *testing.T) {
	provider := &mockProvider{}

	e := NewEngine(provider, nopLogger{},
		WithMonth(2025, time.December),
		WithTimeProvider(&fixedTime{now: day(2025, time.December, 1)}),
	)
	require.NoError(t, e.Load(context.Background()))
	require.Equal(t, 1, provider.calls)

	// Перелистывание через границу года
	e.Navigate(1)
	year, month := e.Visible()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	e.Navigate(-1)
	e.Navigate(-1)
	year, month = e.Visible()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.November, month)

	// Занятые даты загружаются один раз на весь календарь
	e.Cells()
	assert.Equal(t, 1, provider.calls)
}

func TestEngine_TodaySelectable_WithWesternZoneNow(t *testing.T) {
	// Сетка строится в UTC, текущее время - в локальном поясе к западу
	// от UTC: сегодняшняя ячейка остаётся доступной и выбираемой
	loc := time.FixedZone("UTC-5", -5*3600)
	now := &fixedTime{now: time.Date(2025, time.July, 10, 10, 0, 0, 0, loc)}

	e := NewEngine(&mockProvider{}, nopLogger{},
		WithMonth(2025, time.July),
		WithTimeProvider(now),
	)
	require.NoError(t, e.Load(context.Background()))

	cells := e.Cells()
	today := cells[2+10-1]
	assert.Equal(t, CellAvailable, today.Kind)
	assert.True(t, today.Today)
	assert.True(t, today.Interactive())

	d := day(2025, time.July, 10)
	assert.True(t, e.Select(&d))
}

func TestEngine_DefaultsToCurrentMonth(t *testing.T) {
	e := NewEngine(&mockProvider{}, nopLogger{},
		WithTimeProvider(&fixedTime{now: day(2025, time.March, 14)}),
	)

	year, month := e.Visible()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.March, month)
}
