package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-backend/internal/pagination"
)

// PageSize is the fixed size of a catalog page.
const PageSize = 12

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID resolves a product, reporting a missing one as ErrNotFound with
// the id.
func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return Product{}, err
	}
	return p, nil
}

func (s *Service) FindAll(ctx context.Context) ([]Response, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Response, 0, len(products))
	for _, p := range products {
		out = append(out, ToResponse(p))
	}
	return out, nil
}

// FindAllByPage returns a fixed-size page. Page numbers below 1 are treated
// as 1.
func (s *Service) FindAllByPage(ctx context.Context, pageNumber int) (pagination.Page[Response], error) {
	req := pagination.NewRequest(pagination.ClampNumber(pageNumber), PageSize)
	products, total, err := s.repo.ListPage(ctx, req)
	if err != nil {
		return pagination.Page[Response]{}, err
	}
	return pagination.Map(pagination.NewPage(products, req, total), ToResponse), nil
}

// Create is used by seeding.
func (s *Service) Create(ctx context.Context, p Product) (Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
