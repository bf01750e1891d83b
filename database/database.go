package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Motorcycle{},
		&models.ServiceRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Garage listing is always "newest first per owner"
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_motorcycles_user_created ON motorcycles(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for motorcycles: %v\n", err)
	}

	// History listing is always "latest service first per motorcycle"
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_service_records_moto_date ON service_records(motorcycle_id, service_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for service_records: %v\n", err)
	}

	return nil
}

// SeedData populates the database with a demo client, one motorcycle and a
// workshop-originated service record for development/testing.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Cliente Demo",
		Email:    "demo@mototech.pt",
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	moto := models.Motorcycle{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Brand:     "Yamaha",
		Model:     "MT-07",
		Year:      2020,
		Plate:     "AA-01-BB",
		CurrentKm: 12500,
	}
	if err := db.Create(&moto).Error; err != nil {
		return fmt.Errorf("failed to create seed motorcycle: %w", err)
	}

	// Workshop records have no client-facing creation path; the seed is the
	// stand-in for the back office that normally writes them.
	record := models.ServiceRecord{
		ID:           uuid.New().String(),
		MotorcycleID: moto.ID,
		ServiceDate:  time.Now().AddDate(0, -3, 0),
		Description:  "Revisão Completa",
		KmAtService:  12000,
		Source:       models.SourceWorkshop,
	}
	if err := db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create seed service record: %w", err)
	}

	fmt.Println("Database seeded with demo client and garage data")
	return nil
}
