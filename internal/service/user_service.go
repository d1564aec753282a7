package service

import (
	"io"
	"log"
	"path/filepath"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
	"github.com/user/streamvault/internal/storage"
)

// UserService 用户服务：注册、登录与资料管理
type UserService struct {
	repos *repository.Repositories
	files *storage.FileStore
}

// NewUserService 创建用户服务
func NewUserService(repos *repository.Repositories, files *storage.FileStore) *UserService {
	return &UserService{repos: repos, files: files}
}

// Register 注册新用户，邮箱唯一
func (s *UserService) Register(name, email, password string) (*model.User, error) {
	existing, err := s.repos.User.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	return s.repos.User.Create(name, email, password, model.RoleUser)
}

// Login 校验邮箱和密码，成功返回用户
func (s *UserService) Login(email, password string) (*model.User, error) {
	user, err := s.repos.User.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrBadCredentials
	}
	if !s.repos.User.CheckPassword(user, password) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Get 获取用户
func (s *UserService) Get(id string) (*model.User, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List 获取所有用户
func (s *UserService) List() ([]*model.User, error) {
	return s.repos.User.ListAll()
}

// Update 部分更新用户资料
func (s *UserService) Update(id string, update UserUpdate) (*model.User, error) {
	existing, err := s.repos.User.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}
	if err := s.repos.User.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.User.FindByID(id)
}

// ChangeRole 修改用户角色，未知角色值报参数错误
func (s *UserService) ChangeRole(id, roleStr string) error {
	role, ok := model.ParseRole(roleStr)
	if !ok {
		return ErrInvalidRole
	}
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.repos.User.UpdateRole(id, role)
}

// ChangePassword 校验旧密码后更新为新密码
func (s *UserService) ChangePassword(id, oldPassword, newPassword string) error {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.repos.User.CheckPassword(user, oldPassword) {
		return ErrBadCredentials
	}
	return s.repos.User.UpdatePassword(id, newPassword)
}

// Delete 删除用户并连带清理其播放列表，全部在同一事务里
// 存储层失败以布尔值上报
func (s *UserService) Delete(id string) (bool, error) {
	existing, err := s.repos.User.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrUserNotFound
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		playlist, err := tx.Playlist.FindByUserID(id)
		if err != nil {
			return err
		}
		if playlist != nil {
			if err := tx.PlaylistItem.DeleteByPlaylistID(playlist.ID); err != nil {
				return err
			}
			if err := tx.Playlist.Delete(playlist.ID); err != nil {
				return err
			}
		}
		return tx.User.Delete(id)
	})
	if err != nil {
		log.Printf("[UserService] 删除用户失败: %v", err)
		return false, nil
	}
	return true, nil
}

// SaveProfileImage 保存头像并挂到用户上，返回存储标识
func (s *UserService) SaveProfileImage(id, filename string, r io.Reader) (string, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := s.files.Save(filepath.Ext(filename), r)
	if err != nil {
		return "", err
	}
	if err := s.repos.User.UpdateFields(id, map[string]interface{}{"profile_image": token}); err != nil {
		return "", err
	}
	return token, nil
}

// ProfileImage 读取用户头像的存储标识
func (s *UserService) ProfileImage(id string) (string, error) {
	user, err := s.repos.User.FindByID(id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.ProfileImage == nil || *user.ProfileImage == "" {
		return "", ErrProfilePictureNotFound
	}
	return *user.ProfileImage, nil
}
