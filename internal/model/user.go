package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role 用户角色枚举，序列化值固定为 "User" / "Admin"
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole 解析角色字符串，未知值返回 ok=false
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User 用户模型
type User struct {
	ID           string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Active       bool      `json:"active" db:"active"`
	Nickname     *string   `json:"nickname,omitempty" db:"nickname"`
	Role         Role      `json:"role" db:"role" gorm:"type:varchar(16)"`
	ProfileImage *string   `json:"profile_image,omitempty" db:"profile_image"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
