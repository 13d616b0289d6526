package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeeTimeRepository interface {
	Create(ctx context.Context, teeTime *model.TeeTime) (*model.TeeTime, error)
	List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTime, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeeTime, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTime, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeeTimeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTeeTimeRepository(pool *pgxpool.Pool) TeeTimeRepository {
	return &TeeTimeRepositoryImpl{
		pool: pool,
	}
}

const teeTimeColumns = `
	id, to_char("date", 'YYYY-MM-DD'), "time", course_name, revenue_type,
	green_fee, onsite_payment, cost_price, slots_total, status,
	created_by, created_at, updated_at`

func scanTeeTime(row rowScanner) (*model.TeeTime, error) {
	var t model.TeeTime
	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.Time,
		&t.CourseName,
		&t.RevenueType,
		&t.GreenFee,
		&t.OnsitePayment,
		&t.CostPrice,
		&t.SlotsTotal,
		&t.Status,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeeTimeRepositoryImpl) Create(ctx context.Context, teeTime *model.TeeTime) (*model.TeeTime, error) {
	query := `
		INSERT INTO tee_times (
			"date", "time", course_name, revenue_type, green_fee,
			onsite_payment, cost_price, slots_total, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + teeTimeColumns

	created, err := scanTeeTime(r.pool.QueryRow(ctx, query,
		teeTime.Date, teeTime.Time, teeTime.CourseName, teeTime.RevenueType, teeTime.GreenFee,
		teeTime.OnsitePayment, teeTime.CostPrice, teeTime.SlotsTotal, teeTime.Status, teeTime.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create tee time: %w", err)
	}
	return created, nil
}

func (r *TeeTimeRepositoryImpl) List(ctx context.Context, filter model.TeeTimeFilter) ([]*model.TeeTime, error) {
	var where whereBuilder
	if filter.Month != "" {
		where.add(`to_char("date", 'YYYY-MM') = $%d`, filter.Month)
	}
	if filter.CreatedOn != "" {
		where.add("to_char(created_at, 'YYYY-MM-DD') = $%d", filter.CreatedOn)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		where.add("status = ANY($%d)", statuses)
	}

	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM tee_times
		%s
		ORDER BY "date" %s, "time" ASC
	`, teeTimeColumns, where.clause(), direction)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teeTimes := make([]*model.TeeTime, 0)
	for rows.Next() {
		t, err := scanTeeTime(rows)
		if err != nil {
			return nil, err
		}
		teeTimes = append(teeTimes, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teeTimes, nil
}

func (r *TeeTimeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.TeeTime, error) {
	query := `
		SELECT ` + teeTimeColumns + `
		FROM tee_times
		WHERE id = $1
	`

	t, err := scanTeeTime(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTeeTimeNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TeeTimeRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateTeeTimeParams) (*model.TeeTime, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Date != nil {
		set(`"date"`, *params.Date)
	}
	if params.Time != nil {
		set(`"time"`, *params.Time)
	}
	if params.CourseName != nil {
		set("course_name", *params.CourseName)
	}
	if params.RevenueType != nil {
		set("revenue_type", *params.RevenueType)
	}
	if params.GreenFee != nil {
		set("green_fee", *params.GreenFee)
	}
	if params.OnsitePayment != nil {
		set("onsite_payment", *params.OnsitePayment)
	}
	if params.CostPrice != nil {
		set("cost_price", *params.CostPrice)
	}
	if params.SlotsTotal != nil {
		set("slots_total", *params.SlotsTotal)
	}
	if params.Status != nil {
		set("status", *params.Status)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	set("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tee_times
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, teeTimeColumns)

	t, err := scanTeeTime(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTeeTimeNotFound
		}
		return nil, err
	}

	return t, nil
}

// Delete removes the tee time; its bookings go with it through ON DELETE CASCADE.
func (r *TeeTimeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tee_times WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTeeTimeNotFound
	}

	return nil
}
