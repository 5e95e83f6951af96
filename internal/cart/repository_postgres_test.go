package cart

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-backend/internal/product"
)

var cartColumns = []string{"id", "user_id", "quantity", "id", "name", "price", "image_url"}

func TestPostgresFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM cart_items ci").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cartColumns).AddRow(5, 1, 2, 1, "치킨", 20000, "/images/chicken.png"))

	item, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, CartItem{
		ID: 5, UserID: 1, Quantity: 2,
		Product: product.Product{ID: 1, Name: "치킨", Price: 20000, ImageURL: "/images/chicken.png"},
	}, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByUserAndProduct_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE ci.user_id = \\$1 AND ci.product_id = \\$2").WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(cartColumns))

	_, err = repo.FindByUserAndProduct(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresSave_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO cart_items").WithArgs(int64(1), int64(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	saved, err := repo.Save(context.Background(), CartItem{UserID: 1, Product: product.Product{ID: 3}, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSave_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO cart_items").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cart_items_user_product_key"})

	_, err = repo.Save(context.Background(), CartItem{UserID: 1, Product: product.Product{ID: 3}, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductAlreadyInCart)
}

func TestPostgresSave_UpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE cart_items SET quantity").WithArgs(4, int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Save(context.Background(), CartItem{ID: 8, Quantity: 4})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresDeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM cart_items WHERE id = ANY").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteAll(context.Background(), []int64{1, 2}))
	require.NoError(t, repo.DeleteAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteAll_MissingLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM cart_items WHERE id = ANY").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteAll(context.Background(), []int64{1, 2})
	assert.ErrorIs(t, err, ErrCartChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInMemoryDeleteAll_MissingLinesKeepsCart(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)
	saved, err := repo.Save(ctx, CartItem{UserID: 1, Product: product.Product{ID: 1}, Quantity: 1})
	require.NoError(t, err)

	err = repo.DeleteAll(ctx, []int64{saved.ID, 99})
	assert.ErrorIs(t, err, ErrCartChanged)

	_, err = repo.FindByID(ctx, saved.ID)
	assert.NoError(t, err)
}
