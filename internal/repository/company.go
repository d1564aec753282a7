package repository

import (
	"errors"

	"github.com/user/streamvault/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create 创建制作公司
func (r *CompanyRepository) Create(company *model.ProductionCompany) error {
	return r.db.Create(company).Error
}

// FindByID 根据 ID 查找制作公司
func (r *CompanyRepository) FindByID(id string) (*model.ProductionCompany, error) {
	var company model.ProductionCompany
	err := r.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindAll 获取全部制作公司
func (r *CompanyRepository) FindAll() ([]model.ProductionCompany, error) {
	var list []model.ProductionCompany
	err := r.db.Order("name ASC").Find(&list).Error
	return list, err
}

// UpdateFields 部分更新
func (r *CompanyRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.ProductionCompany{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除制作公司
func (r *CompanyRepository) Delete(id string) error {
	return r.db.Delete(&model.ProductionCompany{}, "id = ?", id).Error
}
