package main

import (
	"context"

	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
)

var seedProducts = []product.Product{
	{Name: "치킨", Price: 20000, ImageURL: "/images/chicken.png"},
	{Name: "피자", Price: 25000, ImageURL: "/images/pizza.png"},
	{Name: "햄버거", Price: 8000, ImageURL: "/images/hamburger.png"},
	{Name: "떡볶이", Price: 6000, ImageURL: "/images/tteokbokki.png"},
	{Name: "김밥", Price: 4000, ImageURL: "/images/gimbap.png"},
	{Name: "라면", Price: 3500, ImageURL: "/images/ramen.png"},
	{Name: "짜장면", Price: 7000, ImageURL: "/images/jajangmyeon.png"},
	{Name: "짬뽕", Price: 8000, ImageURL: "/images/jjamppong.png"},
	{Name: "탕수육", Price: 18000, ImageURL: "/images/tangsuyuk.png"},
	{Name: "족발", Price: 35000, ImageURL: "/images/jokbal.png"},
	{Name: "보쌈", Price: 32000, ImageURL: "/images/bossam.png"},
	{Name: "초밥", Price: 22000, ImageURL: "/images/sushi.png"},
}

// seed inserts the demo user and catalog into empty tables.
func seed(ctx context.Context, tx database.Transactor, users *user.Service, products *product.Service, log *zap.Logger) error {
	return tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := users.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			if _, err := users.Create(ctx, user.User{Email: "admin@example.com", Password: "123456789"}); err != nil {
				return err
			}
			log.Info("seeded users", zap.Int("count", 1))
		}

		n, err = products.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			for _, p := range seedProducts {
				if _, err := products.Create(ctx, p); err != nil {
					return err
				}
			}
			log.Info("seeded products", zap.Int("count", len(seedProducts)))
		}
		return nil
	})
}
