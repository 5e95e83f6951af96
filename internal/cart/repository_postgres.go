package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/wichananm65/shopping-backend/internal/database"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	selectCartItem = `
		SELECT ci.id, ci.user_id, ci.quantity, p.id, p.name, p.price, p.image_url
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
	`
	findCartItemByIDQuery             = selectCartItem + `WHERE ci.id = $1`
	findCartItemByUserAndProductQuery = selectCartItem + `WHERE ci.user_id = $1 AND ci.product_id = $2`
	findCartItemsByUserEmailQuery     = selectCartItem + `
		JOIN users u ON u.id = ci.user_id
		WHERE u.email = $1
		ORDER BY ci.id
	`
	insertCartItemQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	updateCartItemQuantityQuery = `UPDATE cart_items SET quantity = $1 WHERE id = $2`
	deleteCartItemQuery         = `DELETE FROM cart_items WHERE id = $1`
	deleteCartItemsQuery        = `DELETE FROM cart_items WHERE id = ANY($1)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (CartItem, error) {
	return r.queryOne(ctx, findCartItemByIDQuery, id)
}

func (r *PostgresRepository) FindByUserAndProduct(ctx context.Context, userID, productID int64) (CartItem, error) {
	return r.queryOne(ctx, findCartItemByUserAndProductQuery, userID, productID)
}

func (r *PostgresRepository) FindAllByUserEmail(ctx context.Context, email string) ([]CartItem, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, findCartItemsByUserEmailQuery, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CartItem, 0)
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Save(ctx context.Context, item CartItem) (CartItem, error) {
	conn := database.Conn(ctx, r.db)

	if item.ID == 0 {
		err := conn.QueryRowContext(ctx, insertCartItemQuery, item.UserID, item.Product.ID, item.Quantity).Scan(&item.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return CartItem{}, ErrProductAlreadyInCart
			}
			return CartItem{}, err
		}
		return item, nil
	}

	res, err := conn.ExecContext(ctx, updateCartItemQuantityQuery, item.Quantity, item.ID)
	if err != nil {
		return CartItem{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return CartItem{}, err
	}
	if n == 0 {
		return CartItem{}, ErrNotFound
	}
	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, deleteCartItemQuery, id)
	return err
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, deleteCartItemsQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return fmt.Errorf("%w: deleted %d of %d lines", ErrCartChanged, n, len(ids))
	}
	return nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, q string, args ...any) (CartItem, error) {
	item, err := scanCartItem(database.Conn(ctx, r.db).QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CartItem{}, ErrNotFound
		}
		return CartItem{}, err
	}
	return item, nil
}

func scanCartItem(scanner rowScanner) (CartItem, error) {
	var c CartItem
	if err := scanner.Scan(&c.ID, &c.UserID, &c.Quantity, &c.Product.ID, &c.Product.Name, &c.Product.Price, &c.Product.ImageURL); err != nil {
		return CartItem{}, err
	}
	return c, nil
}
