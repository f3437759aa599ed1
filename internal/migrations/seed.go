package migrations

import (
	"log"

	"pos_manager/internal/models"

	"gorm.io/gorm"
)

// Seed populates demo branches, customers, menu items and inventory so a
// fresh install can take orders immediately. It is a no-op when branches
// already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Branch{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed data already present, skipping")
		return nil
	}

	log.Println("Seeding default data...")

	branches := []models.Branch{
		{Name: "Nguyen Hue", Address: "74 Nguyen Hue, District 1", Phone: "028-3822-1001"},
		{Name: "Le Loi", Address: "11 Le Loi, District 1", Phone: "028-3822-1002"},
	}
	if err := db.Create(&branches).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "Tran Minh Anh", Email: "minh.anh@example.com", Phone: "0903111222"},
		{Name: "Le Quang Huy", Email: "quang.huy@example.com", Phone: "0903333444"},
		{Name: "Pham Thu Ha", Email: "thu.ha@example.com", Phone: "0903555666"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	menuItems := []models.MenuItem{
		{Name: "Phin Den Da", Description: "Iced black drip coffee", Price: 35000, Category: "Coffee"},
		{Name: "Phin Sua Da", Description: "Iced milk drip coffee", Price: 45000, Category: "Coffee"},
		{Name: "Bac Xiu", Description: "Milk coffee, extra milk", Price: 45000, Category: "Coffee"},
		{Name: "Tra Sen Vang", Description: "Lotus tea with lotus seeds", Price: 55000, Category: "Tea"},
		{Name: "Tra Thach Dao", Description: "Peach tea with jelly", Price: 55000, Category: "Tea"},
		{Name: "Freeze Tra Xanh", Description: "Green tea freeze", Price: 65000, Category: "Freeze"},
		{Name: "Banh Mi Que", Description: "Baguette stick with pate", Price: 25000, Category: "Food"},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		return err
	}

	var inventory []models.InventoryRecord
	for _, branch := range branches {
		for _, item := range menuItems {
			inventory = append(inventory, models.InventoryRecord{
				MenuItemID:        item.ID,
				BranchID:          branch.ID,
				Quantity:          100,
				LowStockThreshold: 10,
			})
		}
	}
	if err := db.Create(&inventory).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d branches, %d customers, %d menu items", len(branches), len(customers), len(menuItems))
	return nil
}
