package impl

import (
	"time"

	"warehouse/internal/domain/entity"
	"warehouse/internal/usecase"
)

// SampleInventory is the fixed demo data loaded by LoadInitialData. The two
// sample transactions are dated now so they show up in today's stats.
func SampleInventory(now time.Time) usecase.SeedData {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	centralCheck := day(2024, time.February, 15)
	eastCheck := day(2024, time.February, 10)

	return usecase.SeedData{
		Products: []entity.Product{
			{
				ID:           "1",
				Name:         "ASUS Laptop",
				Code:         "LAP001",
				Category:     "Electronics",
				CurrentStock: 15,
				MinStock:     5,
				Location:     "Warehouse A-1",
				Supplier:     "Tech Co.",
				CreatedAt:    day(2024, time.January, 15),
			},
			{
				ID:           "2",
				Name:         "Wireless Mouse",
				Code:         "MOU001",
				Category:     "Electronics",
				CurrentStock: 3,
				MinStock:     10,
				Location:     "Warehouse A-2",
				Supplier:     "Computer Distribution",
				CreatedAt:    day(2024, time.January, 20),
			},
			{
				ID:           "3",
				Name:         "Office Chair",
				Code:         "CHR001",
				Category:     "Office",
				CurrentStock: 25,
				MinStock:     8,
				Location:     "Warehouse B-1",
				Supplier:     "Furniture Makers",
				CreatedAt:    day(2024, time.February, 1),
			},
		},
		Warehouses: []entity.Warehouse{
			{
				ID:               "A-1",
				Name:             "Central Warehouse",
				Location:         "Tehran, Azadi St.",
				Capacity:         1000,
				CurrentOccupancy: 650,
				Manager:          &entity.WarehouseManager{Name: "Mohammad Rezaei", ContactInfo: "09123456789"},
				Status:           entity.WarehouseActive,
				Products: []entity.StockTally{
					{ProductID: "1", ProductName: "ASUS Laptop", Quantity: 50},
					{ProductID: "2", ProductName: "Wireless Mouse", Quantity: 100},
				},
				LastInventoryDate: &centralCheck,
			},
			{
				ID:               "B-2",
				Name:             "East Warehouse",
				Location:         "Mashhad, Imam Reza Blvd.",
				Capacity:         500,
				CurrentOccupancy: 250,
				Manager:          &entity.WarehouseManager{Name: "Ali Ahmadi", ContactInfo: "09987654321"},
				Status:           entity.WarehouseActive,
				Products: []entity.StockTally{
					{ProductID: "1", ProductName: "ASUS Laptop", Quantity: 20},
					{ProductID: "2", ProductName: "Wireless Mouse", Quantity: 50},
				},
				LastInventoryDate: &eastCheck,
			},
		},
		Transactions: []entity.Transaction{
			{
				ID:          "1",
				ProductID:   "1",
				ProductName: "ASUS Laptop",
				Type:        entity.TransactionIn,
				Quantity:    10,
				Date:        now,
				Supplier:    "Tech Co.",
				Notes:       "New purchase",
			},
			{
				ID:          "2",
				ProductID:   "2",
				ProductName: "Wireless Mouse",
				Type:        entity.TransactionOut,
				Quantity:    5,
				Date:        now,
				Customer:    "IT Department",
				Notes:       "Delivered to IT",
			},
		},
	}
}
