package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога: активности, ресурсы и дополнения.
// Каталог заполняется административным сидингом и читается только здесь.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActivityByID получает активность по ID
func (r *Repository) GetActivityByID(ctx context.Context, id int64) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"summary",
		"duration_minutes",
		"created_at",
	).
		From("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActivityByID - build select query: %v", ErrBuildQuery, err)
	}

	var activity domain.Activity
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&activity.ID,
		&activity.Slug,
		&activity.Name,
		&activity.Summary,
		&activity.DurationMinutes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActivityByID - scan activity: %v", ErrScanRow, err)
	}

	activity.CreatedAt = createdAt.Time

	return &activity, nil
}

// ListActivities получает все активности в порядке создания
func (r *Repository) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"summary",
		"duration_minutes",
		"created_at",
	).
		From("activities").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		var createdAt sql.NullTime

		if err := rows.Scan(
			&activity.ID,
			&activity.Slug,
			&activity.Name,
			&activity.Summary,
			&activity.DurationMinutes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActivities - scan row: %v", ErrScanRow, err)
		}

		activity.CreatedAt = createdAt.Time
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActivities - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

// GetResourceByID получает ресурс по ID
func (r *Repository) GetResourceByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"activity_id",
		"name",
		"capacity",
		"created_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetResourceByID - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.ActivityID,
		&resource.Name,
		&resource.Capacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetResourceByID - scan resource: %v", ErrScanRow, err)
	}

	resource.CreatedAt = createdAt.Time

	return &resource, nil
}

// ListResourcesByActivity получает ресурсы активности в стабильном порядке
// создания (ORDER BY id). Аллокатор полагается на этот порядок: повторный
// вызов с теми же данными выбирает тот же ресурс.
// Опционально фильтрует по минимальной вместимости.
func (r *Repository) ListResourcesByActivity(ctx context.Context, activityID int64, minCapacity *int) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"activity_id",
		"name",
		"capacity",
		"created_at",
	).
		From("resources").
		Where(squirrel.Eq{"activity_id": activityID}).
		OrderBy("id ASC")

	if minCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *minCapacity})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListResourcesByActivity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListResourcesByActivity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		var resource domain.Resource
		var createdAt sql.NullTime

		if err := rows.Scan(
			&resource.ID,
			&resource.ActivityID,
			&resource.Name,
			&resource.Capacity,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListResourcesByActivity - scan row: %v", ErrScanRow, err)
		}

		resource.CreatedAt = createdAt.Time
		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResourcesByActivity - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

// ListAddOns получает весь каталог дополнений
func (r *Repository) ListAddOns(ctx context.Context) ([]*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price_cents",
		"per_person",
		"created_at",
	).
		From("add_ons").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddOns(rows)
}

// GetAddOnsByIDs получает дополнения по списку ID. Неизвестные ID молча
// пропускаются: результат может быть короче запроса (снятые с продажи
// дополнения не должны ломать расчёт цены).
func (r *Repository) GetAddOnsByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
	if len(ids) == 0 {
		return []*domain.AddOn{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price_cents",
		"per_person",
		"created_at",
	).
		From("add_ons").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddOns(rows)
}

// scanAddOns сканирует результаты запроса в слайс дополнений
func scanAddOns(rows *sql.Rows) ([]*domain.AddOn, error) {
	addOns := make([]*domain.AddOn, 0)

	for rows.Next() {
		var addOn domain.AddOn
		var createdAt sql.NullTime

		if err := rows.Scan(
			&addOn.ID,
			&addOn.Name,
			&addOn.PriceCents,
			&addOn.PerPerson,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanAddOns - scan row: %v", ErrScanRow, err)
		}

		addOn.CreatedAt = createdAt.Time
		addOns = append(addOns, &addOn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddOns - rows error: %v", ErrScanRow, err)
	}

	return addOns, nil
}
