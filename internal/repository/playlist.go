package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// CreateIfAbsent 为用户插入播放列表，已存在则不做任何事
// 依赖 user_id 上的唯一索引，并发首次请求也只会留下一条记录
func (r *PlaylistRepository) CreateIfAbsent(playlist *model.Playlist) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(playlist).Error
}

// FindByUserID 查找用户的播放列表并预加载条目
func (r *PlaylistRepository) FindByUserID(userID string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.
		Preload("Items").
		Preload("Items.Episode").
		Preload("Items.Series").
		Where("user_id = ?", userID).
		First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// FindByID 根据 ID 查找播放列表
func (r *PlaylistRepository) FindByID(id string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.First(&playlist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Delete 删除播放列表
func (r *PlaylistRepository) Delete(id string) error {
	return r.db.Delete(&model.Playlist{}, "id = ?", id).Error
}
