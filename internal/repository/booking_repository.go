package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/charile1/golf-reservation/internal/model"
	apperrors "github.com/charile1/golf-reservation/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	List(ctx context.Context, filter model.BookingFilter) ([]*model.BookingWithTeeTime, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindWithTeeTime(ctx context.Context, id uuid.UUID) (*model.BookingWithTeeTime, error)
	ListByTeeTimeIDs(ctx context.Context, teeTimeIDs []uuid.UUID) ([]*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `
	b.id, b.tee_time_id, b.customer_id, b.name, b.phone, b.people_count,
	b.companion_names, b.booking_type, b.payment_amount, b.status,
	b.paid_at, b.memo, b.created_at, b.updated_at`

func bookingDest(b *model.Booking) []any {
	return []any{
		&b.ID,
		&b.TeeTimeID,
		&b.CustomerID,
		&b.Name,
		&b.Phone,
		&b.PeopleCount,
		&b.CompanionNames,
		&b.BookingType,
		&b.PaymentAmount,
		&b.Status,
		&b.PaidAt,
		&b.Memo,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	if err := row.Scan(bookingDest(&b)...); err != nil {
		return nil, err
	}
	return &b, nil
}

// scanBookingWithTeeTime 讀取 bookingColumns 後接 teeTimeColumns（別名 t）
func scanBookingWithTeeTime(row rowScanner) (*model.BookingWithTeeTime, error) {
	var result model.BookingWithTeeTime
	var t model.TeeTime
	dest := append(bookingDest(&result.Booking),
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
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	result.TeeTime = &t
	return &result, nil
}

const joinedTeeTimeColumns = `
	t.id, to_char(t."date", 'YYYY-MM-DD'), t."time", t.course_name, t.revenue_type,
	t.green_fee, t.onsite_payment, t.cost_price, t.slots_total, t.status,
	t.created_by, t.created_at, t.updated_at`

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings AS b (
			tee_time_id, customer_id, name, phone, people_count, companion_names,
			booking_type, payment_amount, status, paid_at, memo
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + bookingColumns

	created, err := scanBooking(r.pool.QueryRow(ctx, query,
		booking.TeeTimeID, booking.CustomerID, booking.Name, booking.Phone, booking.PeopleCount,
		booking.CompanionNames, booking.BookingType, booking.PaymentAmount, booking.Status,
		booking.PaidAt, booking.Memo,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (r *BookingRepositoryImpl) List(ctx context.Context, filter model.BookingFilter) ([]*model.BookingWithTeeTime, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("b.status = $%d", filter.Status)
	}
	if filter.Month != "" {
		where.add(`to_char(t."date", 'YYYY-MM') = $%d`, filter.Month)
	}
	if filter.TeeTimeID != nil {
		where.add("b.tee_time_id = $%d", *filter.TeeTimeID)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM bookings b
		JOIN tee_times t ON t.id = b.tee_time_id
		%s
		ORDER BY t."date" ASC, t."time" ASC, b.created_at ASC
	`, bookingColumns, joinedTeeTimeColumns, where.clause())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.BookingWithTeeTime, 0)
	for rows.Next() {
		b, err := scanBookingWithTeeTime(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.id = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

// FindWithTeeTime 以 LEFT JOIN 讀取；找不到 tee time 時回傳 ErrTeeTimeNotFound
func (r *BookingRepositoryImpl) FindWithTeeTime(ctx context.Context, id uuid.UUID) (*model.BookingWithTeeTime, error) {
	query := `
		SELECT ` + bookingColumns + `, t.id
		FROM bookings b
		LEFT JOIN tee_times t ON t.id = b.tee_time_id
		WHERE b.id = $1
	`

	var result model.BookingWithTeeTime
	var teeTimeID *uuid.UUID
	dest := append(bookingDest(&result.Booking), &teeTimeID)
	if err := r.pool.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	if teeTimeID == nil {
		return nil, apperrors.ErrTeeTimeNotFound
	}

	teeTime, err := scanTeeTime(r.pool.QueryRow(ctx,
		`SELECT `+teeTimeColumns+` FROM tee_times WHERE id = $1`, *teeTimeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTeeTimeNotFound
		}
		return nil, err
	}
	result.TeeTime = teeTime

	return &result, nil
}

func (r *BookingRepositoryImpl) ListByTeeTimeIDs(ctx context.Context, teeTimeIDs []uuid.UUID) ([]*model.Booking, error) {
	bookings := make([]*model.Booking, 0)
	if len(teeTimeIDs) == 0 {
		return bookings, nil
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.tee_time_id = ANY($1)
		ORDER BY b.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, teeTimeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		UPDATE bookings AS b
		SET tee_time_id = $1, customer_id = $2, name = $3, phone = $4, people_count = $5,
			companion_names = $6, booking_type = $7, payment_amount = $8, status = $9,
			paid_at = $10, memo = $11, updated_at = $12
		WHERE b.id = $13
		RETURNING ` + bookingColumns

	updated, err := scanBooking(r.pool.QueryRow(ctx, query,
		booking.TeeTimeID, booking.CustomerID, booking.Name, booking.Phone, booking.PeopleCount,
		booking.CompanionNames, booking.BookingType, booking.PaymentAmount, booking.Status,
		booking.PaidAt, booking.Memo, time.Now().UTC(), booking.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return updated, nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
