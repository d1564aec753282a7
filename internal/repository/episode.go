package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type EpisodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

// Create 创建电影或单集
func (r *EpisodeRepository) Create(episode *model.Episode) error {
	return r.db.Create(episode).Error
}

// FindByID 根据 ID 查找
func (r *EpisodeRepository) FindByID(id string) (*model.Episode, error) {
	var episode model.Episode
	err := r.db.First(&episode, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// FindByIDWithCast 查找并预加载演职人员与角色
func (r *EpisodeRepository) FindByIDWithCast(id string) (*model.Episode, error) {
	var episode model.Episode
	err := r.db.
		Preload("People").
		Preload("Characters").
		First(&episode, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

// FindAllMovies 获取全部电影
func (r *EpisodeRepository) FindAllMovies() ([]model.Episode, error) {
	var list []model.Episode
	err := r.db.Where("is_movie = ?", true).Find(&list).Error
	return list, err
}

// SearchMoviesByTitle 电影标题子串搜索（大小写不敏感）
func (r *EpisodeRepository) SearchMoviesByTitle(keyword string) ([]model.Episode, error) {
	var list []model.Episode
	err := r.db.
		Where("is_movie = ?", true).
		Where("LOWER(title) LIKE ? ESCAPE '\\'", "%"+likePattern(keyword)+"%").
		Find(&list).Error
	return list, err
}

// FindBySeasonID 获取季下的所有单集
func (r *EpisodeRepository) FindBySeasonID(seasonID string) ([]model.Episode, error) {
	var list []model.Episode
	err := r.db.Where("season_id = ?", seasonID).Find(&list).Error
	return list, err
}

// FindByCompanyID 获取制作公司名下的所有影片
func (r *EpisodeRepository) FindByCompanyID(companyID string) ([]model.Episode, error) {
	var list []model.Episode
	err := r.db.Where("production_company_id = ?", companyID).Find(&list).Error
	return list, err
}

// AppendPerson 建立人物与影片的出演关系
func (r *EpisodeRepository) AppendPerson(episode *model.Episode, person *model.Person) error {
	return r.db.Model(episode).Association("People").Append(person)
}

// Save 全量保存（包含关联刷新）
func (r *EpisodeRepository) Save(episode *model.Episode) error {
	return r.db.Save(episode).Error
}

// UpdateFields 部分更新
func (r *EpisodeRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Episode{}).Where("id = ?", id).Updates(fields).Error
}

// ClearCompanyRefs 将指向某制作公司的外键全部置空
func (r *EpisodeRepository) ClearCompanyRefs(companyID string) error {
	return r.db.Model(&model.Episode{}).
		Where("production_company_id = ?", companyID).
		Update("production_company_id", nil).Error
}

// ClearPersonLinks 删除人物与影片的全部出演关系
func (r *EpisodeRepository) ClearPersonLinks(personID string) error {
	return r.db.Exec("DELETE FROM episode_people WHERE person_id = ?", personID).Error
}

// Delete 删除电影或单集
func (r *EpisodeRepository) Delete(id string) error {
	return r.db.Delete(&model.Episode{}, "id = ?", id).Error
}
