package service

import (
	"io"
	"log"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
	"github.com/user/streamvault/internal/storage"
)

// MediaService 电影与单集的 CRUD 及视频/封面文件管理
type MediaService struct {
	repos *repository.Repositories
	files *storage.FileStore
}

// NewMediaService 创建影片服务
func NewMediaService(repos *repository.Repositories, files *storage.FileStore) *MediaService {
	return &MediaService{repos: repos, files: files}
}

// CreateMovie 创建电影
func (s *MediaService) CreateMovie(movie *model.Episode) (*model.Episode, error) {
	movie.IsMovie = true
	movie.SeasonID = nil
	if movie.ProductionCompanyID != nil && *movie.ProductionCompanyID != "" {
		company, err := s.repos.Company.FindByID(*movie.ProductionCompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrCompanyNotFound
		}
	}
	if err := s.repos.Episode.Create(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// CreateEpisode 在已有季下创建单集
func (s *MediaService) CreateEpisode(seasonID string, episode *model.Episode) (*model.Episode, error) {
	season, err := s.repos.Season.FindByID(seasonID)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, ErrSeasonNotFound
	}

	episode.IsMovie = false
	episode.SeasonID = &season.ID
	if err := s.repos.Episode.Create(episode); err != nil {
		return nil, err
	}
	return episode, nil
}

// Get 获取影片（含演职人员与角色）
func (s *MediaService) Get(id string) (*model.Episode, error) {
	episode, err := s.repos.Episode.FindByIDWithCast(id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, ErrEpisodeNotFound
	}
	return episode, nil
}

// ListMovies 获取全部电影
func (s *MediaService) ListMovies() ([]model.Episode, error) {
	return s.repos.Episode.FindAllMovies()
}

// ListBySeason 获取季下的所有单集
func (s *MediaService) ListBySeason(seasonID string) ([]model.Episode, error) {
	season, err := s.repos.Season.FindByID(seasonID)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, ErrSeasonNotFound
	}
	return s.repos.Episode.FindBySeasonID(seasonID)
}

// Update 部分更新影片
func (s *MediaService) Update(id string, update EpisodeUpdate) (*model.Episode, error) {
	existing, err := s.repos.Episode.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEpisodeNotFound
	}
	if err := s.repos.Episode.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.Episode.FindByID(id)
}

// Delete 删除影片，存储层失败以布尔值上报
func (s *MediaService) Delete(id string) (bool, error) {
	existing, err := s.repos.Episode.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrEpisodeNotFound
	}
	if err := s.repos.Episode.Delete(id); err != nil {
		log.Printf("[MediaService] 删除影片失败: %v", err)
		return false, nil
	}
	return true, nil
}

// SaveVideo 保存视频文件并挂到影片上，返回存储标识
func (s *MediaService) SaveVideo(id, ext string, r io.Reader) (string, error) {
	existing, err := s.repos.Episode.FindByID(id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", ErrEpisodeNotFound
	}

	token, err := s.files.Save(ext, r)
	if err != nil {
		return "", err
	}
	if err := s.repos.Episode.UpdateFields(id, map[string]interface{}{"video_file": token}); err != nil {
		return "", err
	}
	return token, nil
}

// SaveCover 保存封面图片并挂到影片上，返回存储标识
func (s *MediaService) SaveCover(id, ext string, r io.Reader) (string, error) {
	existing, err := s.repos.Episode.FindByID(id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", ErrEpisodeNotFound
	}

	token, err := s.files.Save(ext, r)
	if err != nil {
		return "", err
	}
	if err := s.repos.Episode.UpdateFields(id, map[string]interface{}{"cover_image": token}); err != nil {
		return "", err
	}
	return token, nil
}
