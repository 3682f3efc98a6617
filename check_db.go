package main

import (
	"fmt"
	"log"

	"boq-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=boq_db port=5432 sslmode=disable TimeZone=Europe/London"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var items []ds.CostItem
	err = db.Where("is_deleted = ?", false).Order("code").Find(&items).Error
	if err != nil {
		log.Fatal("Failed to get cost items:", err)
	}

	fmt.Println("Cost items in database:")
	for _, item := range items {
		fmt.Printf("ID: %d, Code: %s, Library: %s, Material: %.2f\n",
			item.ID, item.Code, item.Library, item.MaterialUnitCost)
	}
}
