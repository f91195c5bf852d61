// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"bodhira_backend/internals/features/users/model"

	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON inserts demo users, skipping emails that already exist.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped", data.Email)
			continue
		}

		newUser := model.UserModel{
			UserName:     data.UserName,
			UserEmail:    data.Email,
			UserRole:     data.Role,
			UserIsActive: true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.Email)
		}
	}
}
