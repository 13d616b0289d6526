package service

import (
	"context"
	"strings"

	"github.com/charile1/golf-reservation/internal/model"
	"github.com/charile1/golf-reservation/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	List(ctx context.Context, search string) ([]*model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerServiceImpl struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &CustomerServiceImpl{repo: repo}
}

func (s *CustomerServiceImpl) List(ctx context.Context, search string) ([]*model.Customer, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *CustomerServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerServiceImpl) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, customer)
}

func (s *CustomerServiceImpl) Update(ctx context.Context, id uuid.UUID, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.ID = existing.ID
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, customer)
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
