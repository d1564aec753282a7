package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create 创建人物
func (r *PersonRepository) Create(person *model.Person) error {
	return r.db.Create(person).Error
}

// FindByID 根据 ID 查找人物
func (r *PersonRepository) FindByID(id string) (*model.Person, error) {
	var person model.Person
	err := r.db.First(&person, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindAll 获取全部人物
func (r *PersonRepository) FindAll() ([]model.Person, error) {
	var list []model.Person
	err := r.db.Order("name ASC").Find(&list).Error
	return list, err
}

// UpdateFields 部分更新
func (r *PersonRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Person{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除人物
func (r *PersonRepository) Delete(id string) error {
	return r.db.Delete(&model.Person{}, "id = ?", id).Error
}
