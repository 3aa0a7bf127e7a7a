package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"propertyfinder/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const propertyColumns = `id, title, location, price_min, price_max, bedrooms_min, bedrooms_max,
			property_type, description, image_url, ai_overview, created_at, updated_at`

// filterColumns maps filterable fields onto their columns
var filterColumns = map[model.Field]string{
	model.FieldTitle:       "title",
	model.FieldLocation:    "location",
	model.FieldPriceMin:    "price_min",
	model.FieldBedroomsMin: "bedrooms_min",
	model.FieldCreatedAt:   "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection pool
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Filter returns the properties matching every predicate, in the requested order.
// An empty predicate list returns all rows.
func (r *PostgresRepository) Filter(ctx context.Context, predicates []model.Predicate, orderBy model.OrderBy) ([]model.Property, error) {
	whereClause, args, err := buildWhere(predicates)
	if err != nil {
		return nil, err
	}
	orderClause, err := buildOrder(orderBy)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			%s
		FROM properties
		WHERE %s
		ORDER BY %s
	`, propertyColumns, whereClause, orderClause)

	properties := []model.Property{}
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

// ListAll returns every property, newest first
func (r *PostgresRepository) ListAll(ctx context.Context) ([]model.Property, error) {
	return r.Filter(ctx, nil, model.NewestFirst)
}

// GetByID retrieves a single property by its ID
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	query := fmt.Sprintf(`
		SELECT
			%s
		FROM properties
		WHERE id = $1
	`, propertyColumns)

	if err := r.db.GetContext(ctx, &property, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// GetAIOverview returns only the generated overview of a property
func (r *PostgresRepository) GetAIOverview(ctx context.Context, id uuid.UUID) (*string, error) {
	var overview sql.NullString
	if err := r.db.GetContext(ctx, &overview, `SELECT ai_overview FROM properties WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get ai overview: %w", err)
	}
	if !overview.Valid || overview.String == "" {
		return nil, nil
	}
	return &overview.String, nil
}

// UpdateByID applies the non-nil fields of patch to one property
func (r *PostgresRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch model.PropertyPatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.PriceMin != nil {
		set("price_min", *patch.PriceMin)
	}
	if patch.PriceMax != nil {
		set("price_max", *patch.PriceMax)
	}
	if patch.BedroomsMin != nil {
		set("bedrooms_min", *patch.BedroomsMin)
	}
	if patch.BedroomsMax != nil {
		set("bedrooms_max", *patch.BedroomsMax)
	}
	if patch.PropertyType != nil {
		set("property_type", *patch.PropertyType)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		set("image_url", *patch.ImageURL)
	}
	if patch.AIOverview != nil {
		set("ai_overview", *patch.AIOverview)
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE properties SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIndex)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// buildWhere translates predicates into an AND-joined WHERE clause with positional args
func buildWhere(predicates []model.Predicate) (string, []interface{}, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	for _, p := range predicates {
		column, ok := filterColumns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: field %q", ErrUnsupportedPredicate, p.Field)
		}

		switch p.Operator {
		case model.OpEquals:
			whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", column, argIndex))
			args = append(args, p.Value)
		case model.OpLTE:
			whereClauses = append(whereClauses, fmt.Sprintf("%s <= $%d", column, argIndex))
			args = append(args, p.Value)
		case model.OpSubstringCI:
			whereClauses = append(whereClauses, fmt.Sprintf("%s ILIKE $%d", column, argIndex))
			args = append(args, "%"+likeEscaper.Replace(fmt.Sprint(p.Value))+"%")
		default:
			return "", nil, fmt.Errorf("%w: operator %q", ErrUnsupportedPredicate, p.Operator)
		}
		argIndex++
	}

	return strings.Join(whereClauses, " AND "), args, nil
}

func buildOrder(orderBy model.OrderBy) (string, error) {
	if orderBy.Field == "" {
		orderBy = model.NewestFirst
	}
	column, ok := filterColumns[orderBy.Field]
	if !ok {
		return "", fmt.Errorf("%w: order field %q", ErrUnsupportedPredicate, orderBy.Field)
	}
	if orderBy.Direction == model.Ascending {
		return column + " ASC", nil
	}
	return column + " DESC", nil
}
