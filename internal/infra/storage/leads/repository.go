package leads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

const leadColumns = "id, name, email, phone, event_type, event_date, guest_count, budget_range, message, status, created_at, updated_at"

// Repository репозиторий для работы с лидами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый лид
// created_at и updated_at выставляются базой, статус берётся из модели
func (r *Repository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	query, args, err := psqlbuilder.Insert("leads").
		Columns(
			"name",
			"email",
			"phone",
			"event_type",
			"event_date",
			"guest_count",
			"budget_range",
			"message",
			"status",
		).
		Values(
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.EventType,
			lead.EventDate,
			lead.GuestCount,
			lead.BudgetRange,
			lead.Message,
			lead.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&lead.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time

	return lead, nil
}

// GetByID получает лид по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	query, args, err := psqlbuilder.Select(leadColumns).
		From("leads").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lead: %v", ErrScanRow, err)
	}

	return lead, nil
}

// List получает лиды с фильтрацией по статусу и периоду создания
// Сортировка - новые первыми
func (r *Repository) List(ctx context.Context, filter domain.LeadsFilter) ([]*domain.Lead, error) {
	selectBuilder := psqlbuilder.Select(leadColumns).
		From("leads").
		OrderBy("created_at DESC")

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Фильтрация по периоду создания
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.ToDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// UpdateStatus обновляет статус лида и updated_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error) {
	query, args, err := psqlbuilder.Update("leads").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + leadColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan lead: %v", ErrScanRow, err)
	}

	return lead, nil
}

// Delete удаляет лид (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("leads").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

// DeleteByIDs удаляет несколько лидов одним запросом
// Возвращает количество фактически удалённых записей
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := psqlbuilder.Delete("leads").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanLead сканирует одну строку в модель лида
func scanLead(row rowScanner) (*domain.Lead, error) {
	var lead domain.Lead
	var eventDate sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.EventType,
		&eventDate,
		&lead.GuestCount,
		&lead.BudgetRange,
		&lead.Message,
		&lead.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if eventDate.Valid {
		lead.EventDate = &eventDate.Time
	}
	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time

	return &lead, nil
}

// scanLeads сканирует результаты запроса в слайс лидов
func scanLeads(rows *sql.Rows) ([]*domain.Lead, error) {
	result := make([]*domain.Lead, 0)

	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLeads - scan row: %v", ErrScanRow, err)
		}
		result = append(result, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLeads - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
