package product

import (
	"context"
	"database/sql"
	"errors"

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
	listProductsQuery = `
		SELECT id, name, price, image_url
		FROM products
		ORDER BY id
	`
	listProductsPageQuery = `
		SELECT id, name, price, image_url
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	getProductByIDQuery = `
		SELECT id, name, price, image_url
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, price, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	countProductsQuery = `SELECT COUNT(*) FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	return r.query(ctx, listProductsQuery)
}

func (r *PostgresRepository) ListPage(ctx context.Context, req pagination.Request) ([]Product, int, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || req.Offset() >= total {
		return []Product{}, total, nil
	}

	items, err := r.query(ctx, listProductsPageQuery, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p Product) (Product, error) {
	var id int64
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, insertProductQuery, p.Name, p.Price, p.ImageURL).Scan(&id); err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, countProductsQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Product, error) {
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(scanner rowScanner) (Product, error) {
	var p Product
	if err := scanner.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL); err != nil {
		return Product{}, err
	}
	return p, nil
}
