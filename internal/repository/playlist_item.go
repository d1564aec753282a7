package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type PlaylistItemRepository struct {
	db *gorm.DB
}

func NewPlaylistItemRepository(db *gorm.DB) *PlaylistItemRepository {
	return &PlaylistItemRepository{db: db}
}

// Create 创建播放列表条目
func (r *PlaylistItemRepository) Create(item *model.PlaylistItem) error {
	return r.db.Create(item).Error
}

// FindByID 根据 ID 查找条目
func (r *PlaylistItemRepository) FindByID(id string) (*model.PlaylistItem, error) {
	var item model.PlaylistItem
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete 删除条目
func (r *PlaylistItemRepository) Delete(id string) error {
	return r.db.Delete(&model.PlaylistItem{}, "id = ?", id).Error
}

// DeleteByPlaylistID 删除播放列表下的全部条目
func (r *PlaylistItemRepository) DeleteByPlaylistID(playlistID string) error {
	return r.db.Delete(&model.PlaylistItem{}, "playlist_id = ?", playlistID).Error
}
