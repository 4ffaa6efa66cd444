package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01-01", "2025-06-15", "2025-12-31", "2024-02-29"} {
		parsed, err := ParseDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDate(parsed))
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "25-06-15", "2025/06/15", "not-a-date"} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"вчера", time.Date(2025, time.June, 14, 23, 59, 59, 0, time.UTC), true},
		{"сегодня утром", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), false},
		{"сегодня позже текущего момента", time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC), false},
		{"завтра", time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), false},
		{"прошлый год", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPast(tt.date, now))
		})
	}
}

func TestIsPast_MixedTimezones(t *testing.T) {
	// Ячейки сетки создаются в UTC, а текущее время приходит в локальном
	// поясе сервера: день сравнивается как календарная дата, не как момент.
	// К западу от UTC сегодняшняя UTC-полночь наступает раньше локальной -
	// сегодняшний день не должен от этого становиться прошедшим
	cell := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	nowWest := time.Date(2025, time.July, 10, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.False(t, IsPast(cell, nowWest))
	assert.True(t, IsSameDay(cell, nowWest))

	nowEast := time.Date(2025, time.July, 10, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	assert.False(t, IsPast(cell, nowEast))

	yesterday := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsPast(yesterday, nowWest))
	assert.True(t, IsPast(yesterday, nowEast))
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	assert.True(t, IsToday(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsToday(time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, IsToday(time.Date(2025, time.June, 14, 23, 59, 59, 0, time.UTC), now))
	assert.False(t, IsToday(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February)) // високосный
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestFirstWeekday(t *testing.T) {
	// 1 июня 2025 - воскресенье, 1 июля 2025 - вторник
	assert.Equal(t, 0, FirstWeekday(2025, time.June))
	assert.Equal(t, 2, FirstWeekday(2025, time.July))
	// 1 марта 2025 - суббота
	assert.Equal(t, 6, FirstWeekday(2025, time.March))
}

func TestBuildMonthGrid(t *testing.T) {
	// Март 2025: первое число в субботу - 6 заполнителей + 31 день
	grid := BuildMonthGrid(2025, time.March)
	require.Len(t, grid, 37)

	for i := 0; i < 6; i++ {
		assert.Nil(t, grid[i], "cell %d must be a filler", i)
	}
	require.NotNil(t, grid[6])
	assert.Equal(t, "2025-03-01", FormatDate(*grid[6]))
	require.NotNil(t, grid[36])
	assert.Equal(t, "2025-03-31", FormatDate(*grid[36]))
}

func TestBuildMonthGrid_LengthIdentity(t *testing.T) {
	// Длина сетки всегда равна числу заполнителей плюс числу дней
	for month := time.January; month <= time.December; month++ {
		grid := BuildMonthGrid(2025, month)
		assert.Len(t, grid, FirstWeekday(2025, month)+DaysInMonth(2025, month))
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{2025, time.June, 1, 2025, time.July},
		{2025, time.June, -1, 2025, time.May},
		{2025, time.December, 1, 2026, time.January},
		{2025, time.January, -1, 2024, time.December},
		{2025, time.June, 12, 2026, time.June},
	}

	for _, tt := range tests {
		gotYear, gotMonth := AddMonths(tt.year, tt.month, tt.delta)
		assert.Equal(t, tt.wantYear, gotYear)
		assert.Equal(t, tt.wantMonth, gotMonth)
	}
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	d := Truncate(time.Date(2025, time.June, 15, 23, 45, 12, 999, loc))

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 0, d.Hour())
	// Локация сохраняется: усечение не конвертирует дату в UTC
	assert.Equal(t, loc, d.Location())
}
