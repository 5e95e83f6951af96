package cart

import (
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
	service *Service
	repo    *InMemoryRepository
}

func newFixture(log *zap.Logger) fixture {
	users := user.NewInMemoryRepository([]user.User{
		{ID: 1, Email: adminEmail},
		{ID: 2, Email: otherEmail},
	})
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "치킨", Price: 20000, ImageURL: "/images/chicken.png"},
		{ID: 2, Name: "피자", Price: 25000, ImageURL: "/images/pizza.png"},
	})
	repo := NewInMemoryRepository(users)
	svc := NewService(database.NopTransactor{}, user.NewService(users), product.NewService(products), repo, log)
	return fixture{service: svc, repo: repo}
}
