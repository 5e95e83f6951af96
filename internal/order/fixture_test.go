package order

import (
	"context"
	"testing"

	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
)

const (
	adminEmail = "admin@example.com"
	otherEmail = "other@example.com"
)

type fixture struct {
	orders *Service
	carts  *cart.Service
	repo   *InMemoryRepository
}

func newFixture(log *zap.Logger) fixture {
	userRepo := user.NewInMemoryRepository([]user.User{
		{ID: 1, Email: adminEmail},
		{ID: 2, Email: otherEmail},
	})
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "치킨", Price: 20000, ImageURL: "/images/chicken.png"},
		{ID: 2, Name: "피자", Price: 25000, ImageURL: "/images/pizza.png"},
	}))
	users := user.NewService(userRepo)
	cartRepo := cart.NewInMemoryRepository(userRepo)
	repo := NewInMemoryRepository(userRepo)

	tx := database.NopTransactor{}
	return fixture{
		orders: NewService(tx, users, cartRepo, repo, log),
		carts:  cart.NewService(tx, users, products, cartRepo, log),
		repo:   repo,
	}
}

func (f fixture) addToCart(t *testing.T, email string, productIDs ...int64) {
	t.Helper()
	for _, id := range productIDs {
		if _, err := f.carts.AddItem(context.Background(), email, id); err != nil {
			t.Fatalf("add product %d to cart: %v", id, err)
		}
	}
}
