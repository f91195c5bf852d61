// file: internals/seeds/runner.go
package seeds

import (
	classrooms "bodhira_backend/internals/seeds/classrooms"
	users "bodhira_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds loads the demo dataset. Order matters: classrooms
// reference teacher users by email.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	classrooms.SeedClassroomsFromJSON(db, "internals/seeds/classrooms/data_classrooms.json")
}
