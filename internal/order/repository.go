package order

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/wichananm65/shopping-backend/internal/pagination"
	"github.com/wichananm65/shopping-backend/internal/user"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// Repository defines persistence operations for orders. Orders are loaded
// together with their items.
type Repository interface {
	FindByID(ctx context.Context, id int64) (Order, error)
	// Save inserts the order and its items, filling in ids and CreatedAt.
	Save(ctx context.Context, o Order) (Order, error)
	// FindPageByUserEmail returns one page of the user's orders, newest id
	// first, together with the user's total order count.
	FindPageByUserEmail(ctx context.Context, email string, req pagination.Request) ([]Order, int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	users      user.Repository
	orders     map[int64]Order
	nextID     int64
	nextItemID int64
	now        func() time.Time
}

func NewInMemoryRepository(users user.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		users:      users,
		orders:     make(map[int64]Order),
		nextID:     1,
		nextItemID: 1,
		now:        time.Now,
	}
}

func (r *InMemoryRepository) FindByID(_ context.Context, id int64) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) Save(_ context.Context, o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	o.CreatedAt = r.now().UTC()

	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		it.ID = r.nextItemID
		it.OrderID = o.ID
		r.nextItemID++
		items[i] = it
	}
	o.Items = items

	r.orders[o.ID] = o
	return o, nil
}

func (r *InMemoryRepository) FindPageByUserEmail(ctx context.Context, email string, req pagination.Request) ([]Order, int, error) {
	u, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return []Order{}, 0, nil
		}
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	owned := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == u.ID {
			owned = append(owned, o)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })
	return pagination.Slice(owned, req), len(owned), nil
}
