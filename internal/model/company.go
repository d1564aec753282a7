package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionCompany 制作公司
type ProductionCompany struct {
	ID             string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Name           string    `json:"name" db:"name" gorm:"index"`
	FoundationYear *int      `json:"foundation_year,omitempty" db:"foundation_year"`
	Country        string    `json:"country" db:"country"`
	Website        string    `json:"website" db:"website"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (p *ProductionCompany) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
