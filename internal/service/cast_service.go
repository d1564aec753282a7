package service

import (
	"log"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
)

// CastService 演职人员服务：人物、角色与影片的三方关联
type CastService struct {
	repos *repository.Repositories
}

// NewCastService 创建演职人员服务
func NewCastService(repos *repository.Repositories) *CastService {
	return &CastService{repos: repos}
}

// CharacterInput 新角色的输入
type CharacterInput struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role"`
	Nickname *string `json:"nickname"`
}

// AddCharacter 为已有影片创建角色并绑定到已有人物
// 顺序写入，无整体事务：角色先入库，随后刷新影片的角色集合
func (s *CastService) AddCharacter(episodeID, personID string, in CharacterInput) (*model.Character, error) {
	episode, err := s.repos.Episode.FindByIDWithCast(episodeID)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, ErrEpisodeNotFound
	}

	person, err := s.repos.Person.FindByID(personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}

	character := &model.Character{
		Name:      in.Name,
		Role:      in.Role,
		Nickname:  in.Nickname,
		EpisodeID: episode.ID,
		PersonID:  person.ID,
	}
	if err := s.repos.Character.Create(character); err != nil {
		return nil, err
	}

	episode.Characters = append(episode.Characters, *character)
	if err := s.repos.Episode.Save(episode); err != nil {
		return nil, err
	}

	return character, nil
}

// RemoveCharacter 删除角色，存储层失败以布尔值上报
func (s *CastService) RemoveCharacter(id string) (bool, error) {
	character, err := s.repos.Character.FindByID(id)
	if err != nil {
		return false, err
	}
	if character == nil {
		return false, ErrCharacterNotFound
	}
	if err := s.repos.Character.Delete(id); err != nil {
		log.Printf("[CastService] 删除角色失败: %v", err)
		return false, nil
	}
	return true, nil
}

// AttachPerson 建立人物与影片的出演关系
func (s *CastService) AttachPerson(episodeID, personID string) error {
	episode, err := s.repos.Episode.FindByID(episodeID)
	if err != nil {
		return err
	}
	if episode == nil {
		return ErrEpisodeNotFound
	}

	person, err := s.repos.Person.FindByID(personID)
	if err != nil {
		return err
	}
	if person == nil {
		return ErrPersonNotFound
	}

	return s.repos.Episode.AppendPerson(episode, person)
}

// PersonsWithCharacters 按影片分组演职人员及其饰演的角色
// 尚无角色的人物返回空角色列表，不视为错误
func (s *CastService) PersonsWithCharacters(episodeID string) ([]model.PersonWithCharacters, error) {
	episode, err := s.repos.Episode.FindByIDWithCast(episodeID)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, ErrEpisodeNotFound
	}

	groups := make([]model.PersonWithCharacters, 0, len(episode.People))
	for _, person := range episode.People {
		group := model.PersonWithCharacters{
			Person:     person,
			Characters: []model.Character{},
		}
		for _, character := range episode.Characters {
			if character.PersonID == person.ID {
				group.Characters = append(group.Characters, character)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}
