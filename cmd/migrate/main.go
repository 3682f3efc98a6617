package main

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"os"

	"boq-backend/internal/app/ds"
	"boq-backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.CostCategory{},
		&ds.SubElement{},
		&ds.CostItem{},
		&ds.Project{},
		&ds.ProjectLineItem{},
		&ds.CostComponent{},
		&ds.HistoricCost{},
		&ds.ProjectDocument{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedCatalog(db)
	seedHistoric(db)
	seedAdmin(db)
}

// Первичная загрузка справочника: элементы затрат, суб-элементы и стартовые расценки
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&ds.CostCategory{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	categories := []ds.CostCategory{
		{Code: "1", Name: "Substructure"},
		{Code: "2", Name: "Superstructure"},
		{Code: "3", Name: "Internal Finishes"},
		{Code: "4", Name: "Fittings and Furnishings"},
		{Code: "5", Name: "Services"},
		{Code: "6", Name: "External Works"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	subElements := []ds.SubElement{
		{Code: "1.1", Name: "Foundations", CategoryID: categories[0].ID},
		{Code: "1.2", Name: "Basement Excavation", CategoryID: categories[0].ID},
		{Code: "2.1", Name: "Frame", CategoryID: categories[1].ID},
		{Code: "2.2", Name: "Upper Floors", CategoryID: categories[1].ID},
		{Code: "2.3", Name: "Roof", CategoryID: categories[1].ID},
		{Code: "2.4", Name: "External Walls", CategoryID: categories[1].ID},
		{Code: "2.5", Name: "Windows and External Doors", CategoryID: categories[1].ID},
		{Code: "3.1", Name: "Wall Finishes", CategoryID: categories[2].ID},
		{Code: "3.2", Name: "Floor Finishes", CategoryID: categories[2].ID},
		{Code: "3.3", Name: "Ceiling Finishes", CategoryID: categories[2].ID},
		{Code: "4.1", Name: "General Fittings", CategoryID: categories[3].ID},
		{Code: "5.1", Name: "Sanitary Installations", CategoryID: categories[4].ID},
		{Code: "5.2", Name: "Heat Source", CategoryID: categories[4].ID},
		{Code: "5.3", Name: "Electrical Installations", CategoryID: categories[4].ID},
		{Code: "6.1", Name: "Site Works", CategoryID: categories[5].ID},
	}
	if err := db.Create(&subElements).Error; err != nil {
		log.Fatalf("Failed to seed sub-elements: %v", err)
	}

	items := []ds.CostItem{
		{Code: "BCIS-1.1-010", Description: "Strip foundations, concrete C25, 600mm wide", Unit: "m", MaterialUnitCost: 85.00, ManagementUnitCost: 12.50, ContractorUnitCost: 45.00, WasteFactor: 1.05, IsContractorRequired: true, Library: "bcis", SubElementID: subElements[0].ID},
		{Code: "BCIS-1.1-020", Description: "Raft foundation, reinforced concrete 300mm", Unit: "m2", MaterialUnitCost: 110.00, ManagementUnitCost: 15.00, ContractorUnitCost: 60.00, WasteFactor: 1.08, IsContractorRequired: true, Library: "bcis", SubElementID: subElements[0].ID},
		{Code: "BCIS-2.3-010", Description: "Pitched roof, timber trusses, concrete tiles", Unit: "m2", MaterialUnitCost: 95.00, ManagementUnitCost: 10.00, ContractorUnitCost: 55.00, WasteFactor: 1.10, IsContractorRequired: true, Library: "bcis", SubElementID: subElements[4].ID},
		{Code: "BCIS-2.4-010", Description: "Cavity wall, facing brick outer, block inner", Unit: "m2", MaterialUnitCost: 120.00, ManagementUnitCost: 14.00, ContractorUnitCost: 70.00, WasteFactor: 1.07, IsContractorRequired: true, Library: "bcis", SubElementID: subElements[5].ID},
		{Code: "NRM2-2.5-010", Description: "uPVC double glazed window, standard casement", Unit: "nr", MaterialUnitCost: 320.00, ManagementUnitCost: 25.00, ContractorUnitCost: 80.00, WasteFactor: 1.02, IsContractorRequired: false, Library: "nrm2", SubElementID: subElements[6].ID},
		{Code: "NRM2-3.1-010", Description: "Plaster to walls, two coat, 13mm thick", Unit: "m2", MaterialUnitCost: 8.50, ManagementUnitCost: 1.20, ContractorUnitCost: 12.00, WasteFactor: 1.15, IsContractorRequired: false, Library: "nrm2", SubElementID: subElements[7].ID},
		{Code: "SPON-3.2-010", Description: "Ceramic floor tiling, adhesive fixed", Unit: "m2", MaterialUnitCost: 28.00, ManagementUnitCost: 3.00, ContractorUnitCost: 22.00, WasteFactor: 1.12, IsContractorRequired: false, Library: "spons", SubElementID: subElements[8].ID},
		{Code: "SPON-5.1-010", Description: "WC suite, close coupled, white", Unit: "nr", MaterialUnitCost: 185.00, ManagementUnitCost: 18.00, ContractorUnitCost: 95.00, WasteFactor: 1.00, IsContractorRequired: true, Library: "spons", SubElementID: subElements[11].ID},
		{Code: "SPON-5.3-010", Description: "Consumer unit, 10 way, dual RCD", Unit: "nr", MaterialUnitCost: 145.00, ManagementUnitCost: 20.00, ContractorUnitCost: 180.00, WasteFactor: 1.00, IsContractorRequired: true, Library: "spons", SubElementID: subElements[13].ID},
		{Code: "BCIS-6.1-010", Description: "Block paving to driveways, 80mm, on sand bed", Unit: "m2", MaterialUnitCost: 32.00, ManagementUnitCost: 4.00, ContractorUnitCost: 26.00, WasteFactor: 1.10, IsContractorRequired: false, Library: "bcis", SubElementID: subElements[14].ID},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatalf("Failed to seed cost items: %v", err)
	}

	log.Printf("Catalog seeded: %d categories, %d sub-elements, %d cost items",
		len(categories), len(subElements), len(items))
}

// Стартовая историческая база для сравнения смет
func seedHistoric(db *gorm.DB) {
	var count int64
	db.Model(&ds.HistoricCost{}).Count(&count)
	if count > 0 {
		log.Println("Historic costs already seeded, skipping")
		return
	}

	var categories []ds.CostCategory
	if err := db.Order("code").Find(&categories).Error; err != nil || len(categories) < 3 {
		log.Println("Categories missing, skipping historic seed")
		return
	}

	records := []ds.HistoricCost{
		{CategoryID: categories[0].ID, Region: "London", BuildingAgeBand: "0-10", ConditionBand: "1-2", CostPerArea: 145.00, SampleSize: 18},
		{CategoryID: categories[0].ID, Region: "London", BuildingAgeBand: "10-20", ConditionBand: "3", CostPerArea: 168.00, SampleSize: 9},
		{CategoryID: categories[0].ID, Region: "North West", BuildingAgeBand: "0-10", ConditionBand: "1-2", CostPerArea: 112.00, SampleSize: 11},
		{CategoryID: categories[1].ID, Region: "London", BuildingAgeBand: "0-10", ConditionBand: "1-2", CostPerArea: 620.00, SampleSize: 24},
		{CategoryID: categories[1].ID, Region: "London", BuildingAgeBand: "20-30", ConditionBand: "4-5", CostPerArea: 790.00, SampleSize: 6},
		{CategoryID: categories[1].ID, Region: "North West", BuildingAgeBand: "30+", ConditionBand: "3", CostPerArea: 540.00, SampleSize: 14},
		{CategoryID: categories[2].ID, Region: "London", BuildingAgeBand: "0-10", ConditionBand: "1-2", CostPerArea: 210.00, SampleSize: 21},
		{CategoryID: categories[2].ID, Region: "North West", BuildingAgeBand: "10-20", ConditionBand: "3", CostPerArea: 175.00, SampleSize: 8},
	}
	if err := db.Create(&records).Error; err != nil {
		log.Fatalf("Failed to seed historic costs: %v", err)
	}

	log.Printf("Historic costs seeded: %d records", len(records))
}

// Администратор по умолчанию, пароль берется из ADMIN_PASSWORD
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&ds.User{}).Where("role = ?", 2).Count(&count)
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	h := sha1.New()
	h.Write([]byte(password))

	admin := ds.User{
		Login:    "admin",
		Password: hex.EncodeToString(h.Sum(nil)),
		FullName: "Administrator",
		Role:     2,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Admin user created")
}
