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

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	List(ctx context.Context, search string) ([]*model.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &CustomerRepositoryImpl{
		pool: pool,
	}
}

const customerColumns = `id, name, phone, email, group_type, memo, created_at, updated_at`

func scanCustomer(row rowScanner) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.GroupType,
		&c.Memo,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	query := `
		INSERT INTO customers (name, phone, email, group_type, memo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	created, err := scanCustomer(r.pool.QueryRow(ctx, query,
		customer.Name, customer.Phone, customer.Email, customer.GroupType, customer.Memo,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

// List 依姓名或電話模糊搜尋，search 為空時回傳全部
func (r *CustomerRepositoryImpl) List(ctx context.Context, search string) ([]*model.Customer, error) {
	var where whereBuilder
	if search != "" {
		where.add("(name ILIKE $%[1]d OR phone ILIKE $%[1]d)", "%"+search+"%")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		%s
		ORDER BY created_at DESC
	`, customerColumns, where.clause())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, group_type = $4, memo = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + customerColumns

	updated, err := scanCustomer(r.pool.QueryRow(ctx, query,
		customer.Name, customer.Phone, customer.Email, customer.GroupType, customer.Memo,
		time.Now().UTC(), customer.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return updated, nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCustomerNotFound
	}

	return nil
}
