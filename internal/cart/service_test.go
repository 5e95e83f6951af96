package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddItem_Scenario(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, adminEmail, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.ProductID)
	assert.Equal(t, "치킨", added.ProductName)
	assert.Equal(t, 1, added.Quantity)

	items, err := f.service.ListItems(ctx, adminEmail)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, added, items[0])
}

func TestAddItem_TwiceKeepsOneLine(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, adminEmail, 2)
	require.NoError(t, err)

	_, err = f.service.AddItem(ctx, adminEmail, 2)
	assert.ErrorIs(t, err, ErrProductAlreadyInCart)

	items, err := f.service.ListItems(ctx, adminEmail)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddItem_UnknownUserOrProduct(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, "ghost@example.com", 1)
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = f.service.AddItem(ctx, adminEmail, 99)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestListItems_OnlyOwnLines(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, adminEmail, 1)
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, otherEmail, 2)
	require.NoError(t, err)

	items, err := f.service.ListItems(ctx, otherEmail)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	again, err := f.service.ListItems(ctx, otherEmail)
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, adminEmail, 1)
	require.NoError(t, err)

	updated, err := f.service.UpdateQuantity(ctx, adminEmail, added.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	stored, err := f.repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

func TestUpdateQuantity_MissingItem(t *testing.T) {
	f := newFixture(zap.NewNop())

	_, err := f.service.UpdateQuantity(context.Background(), adminEmail, 77, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOtherUserCannotTouchItem(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(zap.New(core))
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, adminEmail, 1)
	require.NoError(t, err)

	_, err = f.service.UpdateQuantity(ctx, otherEmail, added.ID, 9)
	assert.ErrorIs(t, err, user.ErrNotMatch)

	err = f.service.DeleteItem(ctx, otherEmail, added.ID)
	assert.ErrorIs(t, err, user.ErrNotMatch)

	stored, err := f.repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, 2, logs.FilterMessage("cart item owner mismatch").Len())
}

func TestDeleteItem(t *testing.T) {
	f := newFixture(zap.NewNop())
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, adminEmail, 1)
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteItem(ctx, adminEmail, added.ID))

	items, err := f.service.ListItems(ctx, adminEmail)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = f.service.DeleteItem(ctx, adminEmail, added.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
