package order

import (
	"time"

	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/user"
)

// Order is an immutable purchase created from a user's whole cart.
type Order struct {
	ID        int64
	UserID    int64
	Items     []OrderItem
	CreatedAt time.Time
}

// OrderItem snapshots a cart line. Later catalog changes do not affect it.
type OrderItem struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	ProductName     string
	ProductPrice    int64
	ProductImageURL string
	Quantity        int
}

// FromCart builds an unsaved order holding every given cart line.
func FromCart(userID int64, items []cart.CartItem) Order {
	out := Order{UserID: userID, Items: make([]OrderItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, OrderItem{
			ProductID:       it.Product.ID,
			ProductName:     it.Product.Name,
			ProductPrice:    it.Product.Price,
			ProductImageURL: it.Product.ImageURL,
			Quantity:        it.Quantity,
		})
	}
	return out
}

func (o Order) IsOwnedBy(u user.User) bool {
	return o.UserID == u.ID
}

func (o Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.ProductPrice * int64(it.Quantity)
	}
	return total
}

type ItemResponse struct {
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	ProductPrice    int64  `json:"productPrice"`
	ProductImageURL string `json:"productImageUrl"`
	Quantity        int    `json:"quantity"`
}

// Response is the API shape of an order.
type Response struct {
	OrderID    int64          `json:"orderId"`
	Items      []ItemResponse `json:"items"`
	TotalPrice int64          `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func ToResponse(o Order) Response {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemResponse{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductPrice:    it.ProductPrice,
			ProductImageURL: it.ProductImageURL,
			Quantity:        it.Quantity,
		})
	}
	return Response{
		OrderID:    o.ID,
		Items:      items,
		TotalPrice: o.TotalPrice(),
		CreatedAt:  o.CreatedAt,
	}
}
