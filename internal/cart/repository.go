package cart

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/wichananm65/shopping-backend/internal/user"
)

var (
	ErrNotFound             = errors.New("cart item not found")
	ErrProductAlreadyInCart = errors.New("product already in cart")
	// ErrCartChanged reports that some lines passed to DeleteAll were already
	// gone, usually because a concurrent checkout consumed them.
	ErrCartChanged          = errors.New("cart changed")
)

// Repository stores cart lines. FindByID and FindByUserAndProduct return
// ErrNotFound when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id int64) (CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (CartItem, error)
	FindAllByUserEmail(ctx context.Context, email string) ([]CartItem, error)
	// Save inserts items with a zero ID and updates the quantity of the rest.
	Save(ctx context.Context, item CartItem) (CartItem, error)
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every given line or fails with ErrCartChanged.
	DeleteAll(ctx context.Context, ids []int64) error
}

// InMemoryRepository is used for tests and local scenarios. It resolves
// emails through the given user repository.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  user.Repository
	items  map[int64]CartItem
	nextID int64
}

func NewInMemoryRepository(users user.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		users:  users,
		items:  make(map[int64]CartItem),
		nextID: 1,
	}
}

func (r *InMemoryRepository) FindByID(_ context.Context, id int64) (CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return CartItem{}, ErrNotFound
	}
	return item, nil
}

func (r *InMemoryRepository) FindByUserAndProduct(_ context.Context, userID, productID int64) (CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.UserID == userID && item.Product.ID == productID {
			return item, nil
		}
	}
	return CartItem{}, ErrNotFound
}

func (r *InMemoryRepository) FindAllByUserEmail(ctx context.Context, email string) ([]CartItem, error) {
	u, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return []CartItem{}, nil
		}
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CartItem, 0)
	for _, item := range r.items {
		if item.UserID == u.ID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) Save(_ context.Context, item CartItem) (CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		for _, existing := range r.items {
			if existing.UserID == item.UserID && existing.Product.ID == item.Product.ID {
				return CartItem{}, ErrProductAlreadyInCart
			}
		}
		item.ID = r.nextID
		r.nextID++
		r.items[item.ID] = item
		return item, nil
	}

	existing, ok := r.items[item.ID]
	if !ok {
		return CartItem{}, ErrNotFound
	}
	existing.Quantity = item.Quantity
	r.items[item.ID] = existing
	return existing, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) DeleteAll(_ context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.items[id]; !ok {
			return ErrCartChanged
		}
	}
	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}
