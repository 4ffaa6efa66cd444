// Package dates содержит чистые функции для работы с календарными датами
// с точностью до дня. Время суток везде игнорируется: сравнение дат идёт
// по локальным полям год/месяц/день, без конвертации в UTC (она может
// сдвинуть день через границу часового пояса).
package dates

import "time"

// Format формат даты YYYY-MM-DD
const Format = "2006-01-02"

// FormatDate возвращает каноническое представление даты YYYY-MM-DD
// из локальных полей год/месяц/день
func FormatDate(t time.Time) string {
	return t.Format(Format)
}

// ParseDate парсит дату из формата YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(Format, s)
}

// Truncate обнуляет время суток, оставляя только дату
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast проверяет, что дата строго раньше сегодняшнего дня
// Сравнение по каноническим строкам, как в IsSameDay: даты из разных
// часовых поясов нельзя сравнивать как моменты времени, для YYYY-MM-DD
// лексикографический порядок совпадает с календарным
func IsPast(date, now time.Time) bool {
	return FormatDate(date) < FormatDate(now)
}

// IsToday проверяет, что дата относится к сегодняшнему дню
func IsToday(date, now time.Time) bool {
	return IsSameDay(date, now)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
// Сравнение по форматированным строкам, а не по моментам времени
func IsSameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	// День 0 следующего месяца - это последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday возвращает день недели первого числа месяца
// (0 = воскресенье ... 6 = суббота)
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonthGrid строит плоскую сетку месяца: ведущие nil-ячейки до
// первого числа (по дню недели), затем по одной ячейке на каждый день.
// Хвостовые пустые ячейки не добавляются - вызывающая сторона сама
// разбивает результат на недели по 7
func BuildMonthGrid(year int, month time.Month) []*time.Time {
	leading := FirstWeekday(year, month)
	days := DaysInMonth(year, month)

	grid := make([]*time.Time, 0, leading+days)
	for i := 0; i < leading; i++ {
		grid = append(grid, nil)
	}
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		grid = append(grid, &d)
	}

	return grid
}

// AddMonths сдвигает пару год/месяц на delta месяцев с нормализацией
// через границы года
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	shifted := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return shifted.Year(), shifted.Month()
}
