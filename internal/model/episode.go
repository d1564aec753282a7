package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Episode 影片与剧集统一模型，通过 IsMovie 区分电影与剧集单集
// 电影没有所属季（SeasonID 为空）；剧集单集的描述性字段（语言、奖项等）通常为空
type Episode struct {
	ID                  string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Title               string    `json:"title" db:"title" gorm:"index"`
	IsMovie             bool      `json:"is_movie" db:"is_movie" gorm:"index"`
	VideoFile           *string   `json:"video_file,omitempty" db:"video_file"`
	CoverImage          *string   `json:"cover_image,omitempty" db:"cover_image"`
	ReleaseYear         *int      `json:"release_year,omitempty" db:"release_year" gorm:"index"`
	Genre               string    `json:"genre,omitempty" db:"genre"`
	Description         string    `json:"description,omitempty" db:"description"`
	Language            *string   `json:"language,omitempty" db:"language"`
	Award               *string   `json:"award,omitempty" db:"award"`
	SeasonID            *string   `json:"season_id,omitempty" db:"season_id" gorm:"type:uuid;index"`
	ProductionCompanyID *string   `json:"production_company_id,omitempty" db:"production_company_id" gorm:"type:uuid;index"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`

	People     []Person    `json:"people,omitempty" gorm:"many2many:episode_people"`
	Characters []Character `json:"characters,omitempty" gorm:"foreignKey:EpisodeID"`
}

// TableName 电影与剧集共用一张表
func (Episode) TableName() string {
	return "movies_and_episodes"
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
