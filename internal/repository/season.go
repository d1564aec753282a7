package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type SeasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// Create 创建季
func (r *SeasonRepository) Create(season *model.Season) error {
	return r.db.Create(season).Error
}

// FindByID 根据 ID 查找季
func (r *SeasonRepository) FindByID(id string) (*model.Season, error) {
	var season model.Season
	err := r.db.First(&season, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// FindBySeriesID 获取剧集下的所有季（按季号排序）
func (r *SeasonRepository) FindBySeriesID(seriesID string) ([]model.Season, error) {
	var list []model.Season
	err := r.db.Where("series_id = ?", seriesID).Order("number ASC").Find(&list).Error
	return list, err
}

// UpdateFields 部分更新
func (r *SeasonRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Season{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除季
func (r *SeasonRepository) Delete(id string) error {
	return r.db.Delete(&model.Season{}, "id = ?", id).Error
}
