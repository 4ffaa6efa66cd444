package occupieddates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dates"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation = "23505"
	pgUndefinedTable  = "42P01"
)

// Repository репозиторий для работы с занятыми датами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятых дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает все занятые даты, отсортированные по дате по возрастанию
// При недоступности хранилища возвращает ErrStoreUnavailable - это
// отдельный сигнал, не эквивалентный пустому списку
func (r *Repository) ListAll(ctx context.Context) ([]domain.OccupiedDate, error) {
	query, args, err := psqlbuilder.Select("id", "date", "created_at").
		From("occupied_dates").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]domain.OccupiedDate, 0)
	for rows.Next() {
		var od domain.OccupiedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&od.ID, &od.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		od.CreatedAt = createdAt.Time
		result = append(result, od)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Create помечает дату занятой
// Уникальность даты обеспечивает constraint occupied_dates_date_key:
// нарушение транслируется в ErrDateAlreadyOccupied. Прикладная
// предварительная проверка существования (если она была) - только
// оптимизация, а не источник истины
func (r *Repository) Create(ctx context.Context, date time.Time) (*domain.OccupiedDate, error) {
	query, args, err := psqlbuilder.Insert("occupied_dates").
		Columns("date").
		Values(dates.Truncate(date)).
		Suffix("RETURNING id, date, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var od domain.OccupiedDate
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&od.ID, &od.Date, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pgUniqueViolation:
				return nil, ErrDateAlreadyOccupied
			case pgUndefinedTable:
				return nil, fmt.Errorf("%w: Create - table not provisioned: %v", ErrStoreUnavailable, err)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrStoreUnavailable, err)
	}

	od.CreatedAt = createdAt.Time
	return &od, nil
}

// DeleteByDate снимает отметку занятости с даты
// Удаление не идемпотентно: отсутствующая запись - это ErrDateNotFound
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	query, args, err := psqlbuilder.Delete("occupied_dates").
		Where(squirrel.Eq{"date": dates.Truncate(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrStoreUnavailable, err)
	}

	if rowsAffected == 0 {
		return ErrDateNotFound
	}

	return nil
}
