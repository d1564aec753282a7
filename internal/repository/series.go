package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type SeriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

// Create 创建剧集
func (r *SeriesRepository) Create(series *model.Series) error {
	return r.db.Create(series).Error
}

// FindByID 根据 ID 查找剧集
func (r *SeriesRepository) FindByID(id string) (*model.Series, error) {
	var series model.Series
	err := r.db.First(&series, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// FindByIDWithSeasons 查找剧集并预加载季与单集
func (r *SeriesRepository) FindByIDWithSeasons(id string) (*model.Series, error) {
	var series model.Series
	err := r.db.
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Seasons.Episodes").
		First(&series, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// 填充派生的单集数量
	for i := range series.Seasons {
		series.Seasons[i].EpisodeCount = len(series.Seasons[i].Episodes)
	}

	return &series, nil
}

// FindAll 获取全部剧集
func (r *SeriesRepository) FindAll() ([]model.Series, error) {
	var list []model.Series
	err := r.db.Order("title ASC").Find(&list).Error
	return list, err
}

// SearchByTitle 标题子串搜索（大小写不敏感）
func (r *SeriesRepository) SearchByTitle(keyword string) ([]model.Series, error) {
	var list []model.Series
	err := r.db.Where("LOWER(title) LIKE ? ESCAPE '\\'", "%"+likePattern(keyword)+"%").Find(&list).Error
	return list, err
}

// UpdateFields 部分更新，仅覆盖 fields 中出现的列
func (r *SeriesRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Series{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除剧集
func (r *SeriesRepository) Delete(id string) error {
	return r.db.Delete(&model.Series{}, "id = ?", id).Error
}

// Exists 判断剧集是否存在
func (r *SeriesRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Series{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
