package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength    = 200
	MaxEmailLength   = 320
	MaxPhoneLength   = 50
	MaxMessageLength = 5000
	MinGuestCount    = 1
	MaxGuestCount    = 10000
)

// RecentWindowDays окно "свежих" лидов для статистики, в днях
// Граница включается: лид, созданный ровно 30 дней назад, считается свежим
const RecentWindowDays = 30
