package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/psqlbuilder"
)

// Колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"reference",
	"email",
	"guest_name",
	"resource_id",
	"start_at",
	"duration_minutes",
	"size",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value),
// использует её — при создании с проверкой доступности это обязательно,
// иначе проверка и вставка перестают быть атомарными.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"email",
			"guest_name",
			"resource_id",
			"start_at",
			"duration_minutes",
			"size",
			"status",
		).
		Values(
			booking.Reference,
			booking.Email,
			booking.GuestName,
			booking.ResourceID,
			booking.StartAt,
			booking.DurationMinutes,
			booking.Size,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// CreateAddOns привязывает дополнения к бронированию. Выполняется в той же
// транзакции, что и Create: либо бронирование фиксируется вместе со своими
// дополнениями, либо не фиксируется вовсе.
func (r *Repository) CreateAddOns(ctx context.Context, bookingID int64, addOnIDs []int64) error {
	if len(addOnIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_add_ons").
		Columns("booking_id", "add_on_id")

	for _, addOnID := range addOnIDs {
		insertBuilder = insertBuilder.Values(bookingID, addOnID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateAddOns - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateAddOns - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByReference получает бронирование по клиентскому номеру брони
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan booking: %v", ErrScanRow, err)
	}

	addOnIDs, err := r.loadAddOnIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.AddOnIDs = addOnIDs

	return booking, nil
}

// ListByEmail получает историю бронирований гостя, сначала новые
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"email": email}).
		OrderBy("start_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListForResourcesInRange получает активные бронирования на указанных
// ресурсах, пересекающие полуинтервал [from, to).
//
// Если вызов идёт внутри транзакции, строки блокируются (FOR UPDATE) — это
// критическая секция create_booking: конкурирующая запись на тот же ресурс
// будет ждать, пока проверка и вставка не зафиксируются.
func (r *Repository) ListForResourcesInRange(ctx context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.Booking, error) {
	if len(resourceIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceIDs}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Expr("start_at + make_interval(mins => duration_minutes) > ?", from)).
		OrderBy("resource_id ASC", "start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForResourcesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForResourcesInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel отменяет бронирование с указанием причины. Физического удаления
// нет: история бронирований сохраняется.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// loadAddOnIDs получает ID дополнений бронирования
func (r *Repository) loadAddOnIDs(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("add_on_id").
		From("booking_add_ons").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("add_on_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadAddOnIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadAddOnIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: loadAddOnIDs - scan add_on_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadAddOnIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var startAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.Email,
		&booking.GuestName,
		&booking.ResourceID,
		&startAt,
		&booking.DurationMinutes,
		&booking.Size,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Инстант храним в UTC
	booking.StartAt = startAt.Time.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
