package cart

import (
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
)

// CartItem is one (user, product) line of a cart. Quantity is always
// positive.
type CartItem struct {
	ID       int64
	UserID   int64
	Product  product.Product
	Quantity int
}

func (c CartItem) IsOwnedBy(u user.User) bool {
	return c.UserID == u.ID
}

// Response is the API shape of a cart line.
type Response struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	ProductPrice    int64  `json:"productPrice"`
	ProductImageURL string `json:"productImageUrl"`
	Quantity        int    `json:"quantity"`
}

func ToResponse(c CartItem) Response {
	return Response{
		ID:              c.ID,
		ProductID:       c.Product.ID,
		ProductName:     c.Product.Name,
		ProductPrice:    c.Product.Price,
		ProductImageURL: c.Product.ImageURL,
		Quantity:        c.Quantity,
	}
}
