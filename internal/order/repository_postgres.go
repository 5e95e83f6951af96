package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/pagination"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, product_name, product_price, product_image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	findOrderByIDQuery = `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1
	`
	countOrdersByUserEmailQuery = `
		SELECT COUNT(*)
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE u.email = $1
	`
	findOrderPageByUserEmailQuery = `
		SELECT o.id, o.user_id, o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE u.email = $1
		ORDER BY o.id DESC
		LIMIT $2 OFFSET $3
	`
	findItemsByOrderIDsQuery = `
		SELECT id, order_id, product_id, product_name, product_price, product_image_url, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Order, error) {
	o, err := scanOrder(database.Conn(ctx, r.db).QueryRowContext(ctx, findOrderByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	orders := []Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

// Save must run inside a transaction to keep the order and its items
// together.
func (r *PostgresRepository) Save(ctx context.Context, o Order) (Order, error) {
	conn := database.Conn(ctx, r.db)

	if err := conn.QueryRowContext(ctx, insertOrderQuery, o.UserID).Scan(&o.ID, &o.CreatedAt); err != nil {
		return Order{}, err
	}

	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		it.OrderID = o.ID
		err := conn.QueryRowContext(ctx, insertOrderItemQuery,
			it.OrderID, it.ProductID, it.ProductName, it.ProductPrice, it.ProductImageURL, it.Quantity,
		).Scan(&it.ID)
		if err != nil {
			return Order{}, err
		}
		items[i] = it
	}
	o.Items = items
	return o, nil
}

func (r *PostgresRepository) FindPageByUserEmail(ctx context.Context, email string, req pagination.Request) ([]Order, int, error) {
	conn := database.Conn(ctx, r.db)

	var total int
	if err := conn.QueryRowContext(ctx, countOrdersByUserEmailQuery, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 || req.Offset() >= total {
		return []Order{}, total, nil
	}

	rows, err := conn.QueryContext(ctx, findOrderPageByUserEmailQuery, email, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]Order, 0, req.Limit())
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// attachItems loads the items of all given orders with a single query.
func (r *PostgresRepository) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Items = []OrderItem{}
	}

	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, findItemsByOrderIDsQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductPrice, &it.ProductImageURL, &it.Quantity); err != nil {
			return err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}

func scanOrder(scanner rowScanner) (Order, error) {
	var o Order
	if err := scanner.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
		return Order{}, err
	}
	return o, nil
}
