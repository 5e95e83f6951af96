package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/pagination"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
)

const (
	MinPageSize = 6
	MaxPageSize = 30
)

// Service provides business logic for orders.
type Service struct {
	tx    database.Transactor
	users *user.Service
	carts cart.Repository
	repo  Repository
	log   *zap.Logger
}

func NewService(tx database.Transactor, users *user.Service, carts cart.Repository, repo Repository, log *zap.Logger) *Service {
	return &Service{tx: tx, users: users, carts: carts, repo: repo, log: log}
}

// CreateOrder turns the user's whole cart into an order and empties the
// cart. Both happen in one transaction. An empty cart is rejected with
// ErrEmptyCart.
func (s *Service) CreateOrder(ctx context.Context, email string) (int64, error) {
	var orderID int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		items, err := s.carts.FindAllByUserEmail(ctx, email)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		saved, err := s.repo.Save(ctx, FromCart(u.ID, items))
		if err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		ids := make([]int64, len(items))
		for i, it := range items {
			ids[i] = it.ID
		}
		if err := s.carts.DeleteAll(ctx, ids); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		orderID = saved.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("order created", zap.String("email", email), zap.Int64("order_id", orderID))
	return orderID, nil
}

func (s *Service) FindOrder(ctx context.Context, email string, orderID int64) (Response, error) {
	var out Response
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		o, err := s.repo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrNotFound, orderID)
			}
			return err
		}
		if !o.IsOwnedBy(u) {
			s.log.Warn("order owner mismatch",
				zap.String("email", email),
				zap.Int64("order_id", orderID),
				zap.Int64("owner_id", o.UserID),
			)
			return fmt.Errorf("%w: order %d", user.ErrNotMatch, orderID)
		}
		out = ToResponse(o)
		return nil
	})
	return out, err
}

// ListOrders returns one page of the user's orders, newest first. The page
// number is raised to at least 1 and the size forced into
// [MinPageSize, MaxPageSize].
func (s *Service) ListOrders(ctx context.Context, email string, pageNumber, pageSize int) (pagination.Page[Response], error) {
	req := pagination.NewRequest(
		pagination.ClampNumber(pageNumber),
		pagination.ClampSize(pageSize, MinPageSize, MaxPageSize),
	)

	var out pagination.Page[Response]
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByEmail(ctx, email); err != nil {
			return err
		}
		orders, total, err := s.repo.FindPageByUserEmail(ctx, email, req)
		if err != nil {
			return err
		}
		out = pagination.Map(pagination.NewPage(orders, req, total), ToResponse)
		return nil
	})
	return out, err
}
