package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"food-delivery-payments/internal/model"
)

// for demo purpose: user who pays for orders
const demoUserID = "demo-user-001"

// SeedDemoData creates a user, a restaurant with a small menu and one unpaid
// order so the payment flow can be exercised right after startup.
func SeedDemoData(db *gorm.DB) error {
	user := model.User{
		ID:    demoUserID,
		Email: "demo@example.com",
		Name:  "Demo User",
	}

	restaurant := model.Restaurant{
		ID:      "resto-001",
		Name:    "Mama Mia Trattoria",
		Address: "12 Via Roma",
	}

	menuItems := []model.MenuItem{
		{ID: "item-margherita", RestaurantID: restaurant.ID, Name: "Pizza Margherita", Price: 11.50},
		{ID: "item-carbonara", RestaurantID: restaurant.ID, Name: "Spaghetti Carbonara", Price: 14.00},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return err
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&restaurant).Error; err != nil {
		return err
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&menuItems).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.Order{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	order := model.Order{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		RestaurantID:  restaurant.ID,
		Total:         25.50,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Items: []model.OrderItem{
			{MenuItemID: menuItems[0].ID, Quantity: 1, UnitPrice: menuItems[0].Price},
			{MenuItemID: menuItems[1].ID, Quantity: 1, UnitPrice: menuItems[1].Price},
		},
	}

	return db.Create(&order).Error
}
