// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the minimal identity row this service reads. Registration,
// login, and token issuance live in the auth service; here users only
// supply names/roles for rollups and the active-account check.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(255);not null;unique;column:user_email" json:"user_email"`
	UserRole     string    `gorm:"type:varchar(20);not null;default:'student';column:user_role" json:"user_role"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
