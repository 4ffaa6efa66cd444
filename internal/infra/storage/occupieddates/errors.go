package occupieddates

import "errors"

var (
	// ErrDateNotFound возвращается, когда запись на указанную дату отсутствует
	ErrDateNotFound = errors.New("occupieddates.repository: occupied date not found")

	// ErrDateAlreadyOccupied возвращается при попытке занять уже занятую дату
	// Источник истины - уникальный constraint на колонке date
	ErrDateAlreadyOccupied = errors.New("occupieddates.repository: date is already occupied")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно или не
	// развернуто. Отличается от пустого результата
	ErrStoreUnavailable = errors.New("occupieddates.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("occupieddates.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("occupieddates.repository: failed to scan row")
)
