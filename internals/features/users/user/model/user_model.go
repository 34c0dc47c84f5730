// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ================================
   MODEL: users
   Satu akun = satu role (teacher | student).
================================ */

type UserModel struct {
	ID uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserName string `json:"user_name" gorm:"column:user_name;type:varchar(50);not null"`
	Email    string `json:"email"     gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password string `json:"-"         gorm:"column:password;type:varchar(250);not null"`

	Role     string `json:"role"      gorm:"column:role;type:varchar(16);not null;check:role IN ('teacher','student')"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;type:boolean;not null;default:true"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"column:deleted_at;type:timestamptz"`
}

func (UserModel) TableName() string { return "users" }
