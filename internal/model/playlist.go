package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playlist 播放列表，每个用户最多一个（user_id 上有唯一索引）
type Playlist struct {
	ID        string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" db:"user_id" gorm:"type:uuid;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Items []PlaylistItem `json:"items" gorm:"foreignKey:PlaylistID"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PlaylistItem 播放列表条目，EpisodeID 与 SeriesID 必须恰好填一个
// 互斥约束在服务层校验，不依赖数据库 schema
type PlaylistItem struct {
	ID         string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	PlaylistID string    `json:"playlist_id" db:"playlist_id" gorm:"type:uuid;index"`
	EpisodeID  *string   `json:"episode_id,omitempty" db:"episode_id" gorm:"type:uuid"`
	SeriesID   *string   `json:"series_id,omitempty" db:"series_id" gorm:"type:uuid"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Episode *Episode `json:"episode,omitempty" gorm:"foreignKey:EpisodeID"`
	Series  *Series  `json:"series,omitempty" gorm:"foreignKey:SeriesID"`
}

// BeforeCreate 未预先分配 ID 时生成 UUID
func (p *PlaylistItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
