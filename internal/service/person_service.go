package service

import (
	"log"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
)

// PersonService 人物服务
type PersonService struct {
	repos *repository.Repositories
}

// NewPersonService 创建人物服务
func NewPersonService(repos *repository.Repositories) *PersonService {
	return &PersonService{repos: repos}
}

// Create 创建人物
func (s *PersonService) Create(person *model.Person) (*model.Person, error) {
	if err := s.repos.Person.Create(person); err != nil {
		return nil, err
	}
	return person, nil
}

// Get 获取人物
func (s *PersonService) Get(id string) (*model.Person, error) {
	person, err := s.repos.Person.FindByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List 获取全部人物
func (s *PersonService) List() ([]model.Person, error) {
	return s.repos.Person.FindAll()
}

// Update 部分更新人物
func (s *PersonService) Update(id string, update PersonUpdate) (*model.Person, error) {
	existing, err := s.repos.Person.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPersonNotFound
	}
	if err := s.repos.Person.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.Person.FindByID(id)
}

// Delete 两阶段删除人物：先摘除出演关系和名下角色，再删除人物本身
// 两个阶段在同一事务里，要么都成功要么都不发生；存储层失败以布尔值上报
func (s *PersonService) Delete(id string) (bool, error) {
	existing, err := s.repos.Person.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrPersonNotFound
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Episode.ClearPersonLinks(id); err != nil {
			return err
		}
		if err := tx.Character.DeleteByPersonID(id); err != nil {
			return err
		}
		return tx.Person.Delete(id)
	})
	if err != nil {
		log.Printf("[PersonService] 删除人物失败: %v", err)
		return false, nil
	}
	return true, nil
}
