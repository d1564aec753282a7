package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Series 剧集模型
type Series struct {
	ID          string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" db:"title" gorm:"index"`
	Genre       string    `json:"genre" db:"genre"`
	ReleaseYear int       `json:"release_year" db:"release_year" gorm:"index"`
	FinalYear   *int      `json:"final_year,omitempty" db:"final_year"`
	Description string    `json:"description" db:"description"`
	CoverImage  *string   `json:"cover_image,omitempty" db:"cover_image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Seasons []Season `json:"seasons,omitempty" gorm:"foreignKey:SeriesID"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (s *Series) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Season 季模型
// Number 在所属剧集内唯一；SeriesID 为空的季视为孤儿数据，仅在级联创建过程中短暂出现
type Season struct {
	ID          string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Number      int       `json:"number" db:"number" gorm:"uniqueIndex:idx_series_season_number"`
	ReleaseYear int       `json:"release_year" db:"release_year"`
	SeriesID    *string   `json:"series_id,omitempty" db:"series_id" gorm:"type:uuid;uniqueIndex:idx_series_season_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:SeasonID"`

	// EpisodeCount 派生字段，读取路径按需填充，不落库
	EpisodeCount int `json:"episode_count" gorm:"-"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
