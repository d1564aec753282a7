package service

import (
	"log"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
)

// CompanyService 制作公司服务
type CompanyService struct {
	repos *repository.Repositories
}

// NewCompanyService 创建制作公司服务
func NewCompanyService(repos *repository.Repositories) *CompanyService {
	return &CompanyService{repos: repos}
}

// Create 创建制作公司
func (s *CompanyService) Create(company *model.ProductionCompany) (*model.ProductionCompany, error) {
	if err := s.repos.Company.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get 获取制作公司
func (s *CompanyService) Get(id string) (*model.ProductionCompany, error) {
	company, err := s.repos.Company.FindByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// List 获取全部制作公司
func (s *CompanyService) List() ([]model.ProductionCompany, error) {
	return s.repos.Company.FindAll()
}

// ListProductions 获取公司名下的所有影片
func (s *CompanyService) ListProductions(id string) ([]model.Episode, error) {
	company, err := s.repos.Company.FindByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return s.repos.Episode.FindByCompanyID(id)
}

// Update 部分更新制作公司
func (s *CompanyService) Update(id string, update CompanyUpdate) (*model.ProductionCompany, error) {
	existing, err := s.repos.Company.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCompanyNotFound
	}
	if err := s.repos.Company.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.Company.FindByID(id)
}

// Delete 两阶段删除制作公司：先把影片上的外键置空，再删除公司记录
// 两个阶段在同一事务里，要么都成功要么都不发生；存储层失败以布尔值上报
func (s *CompanyService) Delete(id string) (bool, error) {
	existing, err := s.repos.Company.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrCompanyNotFound
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Episode.ClearCompanyRefs(id); err != nil {
			return err
		}
		return tx.Company.Delete(id)
	})
	if err != nil {
		log.Printf("[CompanyService] 删除制作公司失败: %v", err)
		return false, nil
	}
	return true, nil
}
