package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person 人物（演员/导演等，Role 为自由文本）
type Person struct {
	ID        string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" db:"name" gorm:"index"`
	Age       *int      `json:"age,omitempty" db:"age"`
	Role      *string   `json:"role,omitempty" db:"role"`
	Awards    *string   `json:"awards,omitempty" db:"awards"`
	Gender    *string   `json:"gender,omitempty" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Episodes   []Episode   `json:"episodes,omitempty" gorm:"many2many:episode_people"`
	Characters []Character `json:"characters,omitempty" gorm:"foreignKey:PersonID"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Character 角色，必须同时属于一个单集和一个人物
type Character struct {
	ID        string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Nickname  *string   `json:"nickname,omitempty" db:"nickname"`
	EpisodeID string    `json:"episode_id" db:"episode_id" gorm:"type:uuid;index"`
	PersonID  string    `json:"person_id" db:"person_id" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (c *Character) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// PersonWithCharacters 单集演职人员及其饰演角色的分组结果
type PersonWithCharacters struct {
	Person     Person      `json:"person"`
	Characters []Character `json:"characters"`
}
