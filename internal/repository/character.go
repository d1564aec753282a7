package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create 创建角色
func (r *CharacterRepository) Create(character *model.Character) error {
	return r.db.Create(character).Error
}

// FindByID 根据 ID 查找角色
func (r *CharacterRepository) FindByID(id string) (*model.Character, error) {
	var character model.Character
	err := r.db.First(&character, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &character, nil
}

// DeleteByPersonID 删除某人物的全部角色
func (r *CharacterRepository) DeleteByPersonID(personID string) error {
	return r.db.Delete(&model.Character{}, "person_id = ?", personID).Error
}

// Delete 删除角色
func (r *CharacterRepository) Delete(id string) error {
	return r.db.Delete(&model.Character{}, "id = ?", id).Error
}
