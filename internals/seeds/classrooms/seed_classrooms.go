// file: internals/seeds/classrooms/seed_classrooms.go
package classrooms

import (
	"encoding/json"
	"log"
	"os"

	classroomModel "bodhira_backend/internals/features/classrooms/model"
	userModel "bodhira_backend/internals/features/users/model"

	"gorm.io/gorm"
)

type ClassroomSeed struct {
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	Code         string `json:"code"`
	TeacherEmail string `json:"teacher_email"`
}

// SeedClassroomsFromJSON inserts demo classrooms, resolving the owning
// teacher by email. Codes that already exist are skipped.
func SeedClassroomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading classroom seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []ClassroomSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing classroomModel.ClassroomModel
		if err := db.Where("classroom_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Classroom '%s' already exists, skipped", data.Code)
			continue
		}

		var teacher userModel.UserModel
		if err := db.Where("user_email = ?", data.TeacherEmail).First(&teacher).Error; err != nil {
			log.Printf("❌ Teacher '%s' not found for classroom '%s', skipped", data.TeacherEmail, data.Name)
			continue
		}

		newClassroom := classroomModel.ClassroomModel{
			ClassroomTeacherID: teacher.UserID,
			ClassroomName:      data.Name,
			ClassroomSubject:   data.Subject,
			ClassroomCode:      data.Code,
			ClassroomIsActive:  true,
		}
		if err := db.Create(&newClassroom).Error; err != nil {
			log.Printf("❌ Failed to insert classroom '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Inserted classroom '%s' (%s)", data.Name, data.Code)
		}
	}
}
