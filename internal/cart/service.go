package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
)

// Service orchestrates cart operations. Every call re-resolves the acting
// user from the email claim and runs inside one transaction.
type Service struct {
	tx       database.Transactor
	users    *user.Service
	products *product.Service
	repo     Repository
	log      *zap.Logger
}

func NewService(tx database.Transactor, users *user.Service, products *product.Service, repo Repository, log *zap.Logger) *Service {
	return &Service{tx: tx, users: users, products: products, repo: repo, log: log}
}

// AddItem puts a product in the user's cart with quantity 1. Adding a
// product twice fails with ErrProductAlreadyInCart.
func (s *Service) AddItem(ctx context.Context, email string, productID int64) (Response, error) {
	var out Response
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		p, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}

		_, err = s.repo.FindByUserAndProduct(ctx, u.ID, p.ID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %d", ErrProductAlreadyInCart, p.ID)
		case !errors.Is(err, ErrNotFound):
			return err
		}

		item, err := s.repo.Save(ctx, CartItem{UserID: u.ID, Product: p, Quantity: 1})
		if err != nil {
			return err
		}
		out = ToResponse(item)
		return nil
	})
	return out, err
}

func (s *Service) ListItems(ctx context.Context, email string) ([]Response, error) {
	var out []Response
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByEmail(ctx, email); err != nil {
			return err
		}
		items, err := s.repo.FindAllByUserEmail(ctx, email)
		if err != nil {
			return err
		}
		out = make([]Response, 0, len(items))
		for _, item := range items {
			out = append(out, ToResponse(item))
		}
		return nil
	})
	return out, err
}

// UpdateQuantity replaces the quantity of one of the user's cart lines.
// Positivity is checked by the caller.
func (s *Service) UpdateQuantity(ctx context.Context, email string, cartItemID int64, quantity int) (Response, error) {
	var out Response
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.ownedItem(ctx, email, cartItemID)
		if err != nil {
			return err
		}
		item.Quantity = quantity
		saved, err := s.repo.Save(ctx, item)
		if err != nil {
			return err
		}
		out = ToResponse(saved)
		return nil
	})
	return out, err
}

func (s *Service) DeleteItem(ctx context.Context, email string, cartItemID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.ownedItem(ctx, email, cartItemID)
		if err != nil {
			return err
		}
		return s.repo.Delete(ctx, item.ID)
	})
}

// ownedItem loads a cart line and checks it belongs to the user with the
// given email. Cart item ids are global, so the check is always required.
func (s *Service) ownedItem(ctx context.Context, email string, cartItemID int64) (CartItem, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return CartItem{}, err
	}
	item, err := s.repo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CartItem{}, fmt.Errorf("%w: %d", ErrNotFound, cartItemID)
		}
		return CartItem{}, err
	}
	if !item.IsOwnedBy(u) {
		s.log.Warn("cart item owner mismatch",
			zap.String("email", email),
			zap.Int64("cart_item_id", cartItemID),
			zap.Int64("owner_id", item.UserID),
		)
		return CartItem{}, fmt.Errorf("%w: cart item %d", user.ErrNotMatch, cartItemID)
	}
	return item, nil
}
