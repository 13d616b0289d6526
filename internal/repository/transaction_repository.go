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

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) (*model.Transaction, error)
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
	HasAnyByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	FindActiveByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, filter model.TransactionFilter) ([]*model.TransactionWithBooking, error)
	Update(ctx context.Context, tx *model.Transaction) (*model.Transaction, error)
	CancelByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error)
}

type TransactionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &TransactionRepositoryImpl{
		pool: pool,
	}
}

const transactionColumns = `
	tr.id, tr.booking_id, tr.tee_time_id, tr.course_name, tr.total_price, tr.prepayment,
	tr.onsite_payment, tr.cost, tr.commission, tr.commission_per_person, tr.revenue_type,
	tr.people_count, tr.status, to_char(tr.booking_date, 'YYYY-MM-DD'),
	to_char(tr.play_date, 'YYYY-MM-DD'), tr.settled_at, tr.memo, tr.created_at, tr.updated_at`

func transactionDest(t *model.Transaction) []any {
	return []any{
		&t.ID,
		&t.BookingID,
		&t.TeeTimeID,
		&t.CourseName,
		&t.TotalPrice,
		&t.Prepayment,
		&t.OnsitePayment,
		&t.Cost,
		&t.Commission,
		&t.CommissionPerPerson,
		&t.RevenueType,
		&t.PeopleCount,
		&t.Status,
		&t.BookingDate,
		&t.PlayDate,
		&t.SettledAt,
		&t.Memo,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var t model.Transaction
	if err := row.Scan(transactionDest(&t)...); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create 寫入帳目；同一預約已有未取消帳目時回傳 ErrTransactionExists
func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	query := `
		INSERT INTO transactions AS tr (
			booking_id, tee_time_id, course_name, total_price, prepayment, onsite_payment,
			cost, commission, commission_per_person, revenue_type, people_count, status,
			booking_date, play_date, settled_at, memo
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::date, $14::date, $15, $16)
		ON CONFLICT (booking_id) WHERE status <> 'canceled' DO NOTHING
		RETURNING ` + transactionColumns

	created, err := scanTransaction(r.pool.QueryRow(ctx, query,
		tx.BookingID, tx.TeeTimeID, tx.CourseName, tx.TotalPrice, tx.Prepayment, tx.OnsitePayment,
		tx.Cost, tx.Commission, tx.CommissionPerPerson, tx.RevenueType, tx.PeopleCount, tx.Status,
		tx.BookingDate, tx.PlayDate, tx.SettledAt, tx.Memo,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransactionExists
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return created, nil
}

func (r *TransactionRepositoryImpl) ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions WHERE booking_id = $1 AND status <> 'canceled'
		)
	`, bookingID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// HasAnyByBookingID 含已取消的紀錄
func (r *TransactionRepositoryImpl) HasAnyByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM transactions WHERE booking_id = $1)
	`, bookingID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TransactionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions tr WHERE tr.id = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepositoryImpl) FindActiveByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions tr
		WHERE tr.booking_id = $1 AND tr.status <> 'canceled'
	`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepositoryImpl) List(ctx context.Context, filter model.TransactionFilter) ([]*model.TransactionWithBooking, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("tr.status = $%d", filter.Status)
	}
	if filter.Month != "" {
		where.add("to_char(tr.play_date, 'YYYY-MM') = $%d", filter.Month)
	}

	query := fmt.Sprintf(`
		SELECT %s, b.id, b.name, b.phone
		FROM transactions tr
		LEFT JOIN bookings b ON b.id = tr.booking_id
		%s
		ORDER BY tr.play_date DESC, tr.created_at DESC
	`, transactionColumns, where.clause())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*model.TransactionWithBooking, 0)
	for rows.Next() {
		var t model.TransactionWithBooking
		var (
			bookingID *uuid.UUID
			name      *string
			phone     *string
		)
		dest := append(transactionDest(&t.Transaction), &bookingID, &name, &phone)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		// 預約已刪除時 booking 為 nil
		if bookingID != nil {
			t.Booking = &model.BookingSummary{ID: *bookingID}
			if name != nil {
				t.Booking.Name = *name
			}
			if phone != nil {
				t.Booking.Phone = *phone
			}
		}
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *TransactionRepositoryImpl) Update(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	query := `
		UPDATE transactions AS tr
		SET total_price = $1, prepayment = $2, onsite_payment = $3, commission = $4,
			commission_per_person = $5, status = $6, settled_at = $7, memo = $8, updated_at = $9
		WHERE tr.id = $10
		RETURNING ` + transactionColumns

	updated, err := scanTransaction(r.pool.QueryRow(ctx, query,
		tx.TotalPrice, tx.Prepayment, tx.OnsitePayment, tx.Commission,
		tx.CommissionPerPerson, tx.Status, tx.SettledAt, tx.Memo, time.Now().UTC(), tx.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return updated, nil
}

// CancelByBookingID 將預約底下所有未取消帳目標記為 canceled，回傳影響筆數
func (r *TransactionRepositoryImpl) CancelByBookingID(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	result, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET status = 'canceled', settled_at = NULL, updated_at = $1
		WHERE booking_id = $2 AND status <> 'canceled'
	`, time.Now().UTC(), bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
