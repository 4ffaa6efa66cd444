package occupieddates

import "errors"

var (
	// ErrDateNotFound возвращается, когда дата не помечена занятой
	ErrDateNotFound = errors.New("occupied date not found")

	// ErrDateConflict возвращается при попытке занять уже занятую дату
	ErrDateConflict = errors.New("date is already occupied")

	// ErrStoreUnavailable возвращается, когда хранилище дат недоступно
	// Отличается от пустого списка
	ErrStoreUnavailable = errors.New("occupied dates store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("occupieddates service: internal error")
)
