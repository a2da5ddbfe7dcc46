package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"sigkihan-server/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.ProfileImage{}); err != nil {
		log.Fatalf("Error migrating profile image database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Refrigerator{}); err != nil {
		log.Fatalf("Error migrating refrigerator database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RefrigeratorAccess{}); err != nil {
		log.Fatalf("Error migrating refrigerator access database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RefrigeratorInvitation{}); err != nil {
		log.Fatalf("Error migrating refrigerator invitation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DefaultFood{}); err != nil {
		log.Fatalf("Error migrating default food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeFood{}); err != nil {
		log.Fatalf("Error migrating fridge food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodHistory{}); err != nil {
		log.Fatalf("Error migrating food history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Memo{}); err != nil {
		log.Fatalf("Error migrating memo database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
