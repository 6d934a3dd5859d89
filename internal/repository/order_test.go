package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"food-delivery-payments/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a per-test file keeps every pooled connection on the same database
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	return db
}

func seedOrder(t *testing.T, db *gorm.DB) *model.Order {
	t.Helper()

	require.NoError(t, db.Create(&model.Restaurant{ID: "resto-001", Name: "Mama Mia Trattoria"}).Error)
	require.NoError(t, db.Create(&model.MenuItem{ID: "item-margherita", RestaurantID: "resto-001", Name: "Pizza Margherita", Price: 11.50}).Error)

	order := &model.Order{
		ID:            "ord-001",
		UserID:        "user-001",
		RestaurantID:  "resto-001",
		Total:         25.50,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Items: []model.OrderItem{
			{MenuItemID: "item-margherita", Quantity: 2, UnitPrice: 11.50},
		},
	}
	require.NoError(t, db.Create(order).Error)

	return order
}

func TestOrderRepository_FindByIDAndUser(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db)
	repo := NewOrderRepository(db)

	order, err := repo.FindByIDAndUser(context.Background(), "ord-001", "user-001")
	require.NoError(t, err)

	assert.Equal(t, "ord-001", order.ID)
	assert.Equal(t, "Mama Mia Trattoria", order.Restaurant.Name)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Pizza Margherita", order.Items[0].MenuItem.Name)
}

func TestOrderRepository_FindByIDAndUser_WrongOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db)
	repo := NewOrderRepository(db)

	_, err := repo.FindByIDAndUser(context.Background(), "ord-001", "someone-else")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_UpdatePaymentState(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db)
	repo := NewOrderRepository(db)

	order.Status = model.OrderStatusProcessing
	order.PaymentStatus = model.PaymentStatusPaid
	order.PaymentDetails = model.PaymentDetails{
		IntentID:  "pi_123",
		PaymentID: "pi_123",
		Status:    "succeeded",
		CardBrand: "visa",
		Last4:     "4242",
	}
	require.NoError(t, repo.UpdatePaymentState(context.Background(), order))

	stored, err := repo.FindByIDAndUser(context.Background(), "ord-001", "user-001")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, stored.Status)
	assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, "pi_123", stored.PaymentDetails.IntentID)
	assert.Equal(t, "visa", stored.PaymentDetails.CardBrand)
	assert.Equal(t, "4242", stored.PaymentDetails.Last4)
}

func TestOrderRepository_UpdatePaymentState_MissingOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	err := repo.UpdatePaymentState(context.Background(), &model.Order{ID: "no-such-order"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedDemoData(db))
	require.NoError(t, SeedDemoData(db))

	var orders int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}
