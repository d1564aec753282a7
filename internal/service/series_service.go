package service

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
)

// SeriesService 剧集服务：级联创建、季管理与 EP1 定位
type SeriesService struct {
	repos *repository.Repositories
}

// NewSeriesService 创建剧集服务
func NewSeriesService(repos *repository.Repositories) *SeriesService {
	return &SeriesService{repos: repos}
}

// CreateCascade 级联创建剧集及其季与单集，全部写入发生在同一个事务中
// episodesBySeason 以季的 ID 为键，因此季的 ID 必须在持久化之前就已分配；
// 调用方未分配时由本方法统一生成。映射中没有对应条目的季将以零个单集入库，这不是错误。
// 任何一步失败则整个级联回滚，包括剧集本身。
func (s *SeriesService) CreateCascade(series *model.Series, seasons []model.Season, episodesBySeason map[string][]model.Episode) (*model.Series, error) {
	if series.ID == "" {
		series.ID = uuid.NewString()
	}
	for i := range seasons {
		if seasons[i].ID == "" {
			seasons[i].ID = uuid.NewString()
		}
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		// 先写剧集，季才有真实的父级 ID 可挂
		if err := tx.Series.Create(series); err != nil {
			return err
		}

		for i := range seasons {
			season := &seasons[i]
			season.SeriesID = &series.ID
			season.Episodes = nil

			if err := tx.Season.Create(season); err != nil {
				return err
			}

			for _, episode := range episodesBySeason[season.ID] {
				seasonID := season.ID
				episode.SeasonID = &seasonID
				episode.IsMovie = false

				if err := tx.Episode.Create(&episode); err != nil {
					return err
				}
				season.Episodes = append(season.Episodes, episode)
			}
			season.EpisodeCount = len(season.Episodes)
		}
		return nil
	})
	if err != nil {
		log.Printf("[SeriesService] 级联创建失败，已回滚: %v", err)
		return nil, err
	}

	series.Seasons = seasons
	return series, nil
}

// Get 获取剧集（含季与单集）
func (s *SeriesService) Get(id string) (*model.Series, error) {
	series, err := s.repos.Series.FindByIDWithSeasons(id)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, ErrSeriesNotFound
	}
	return series, nil
}

// List 获取全部剧集
func (s *SeriesService) List() ([]model.Series, error) {
	return s.repos.Series.FindAll()
}

// Update 部分更新剧集
func (s *SeriesService) Update(id string, update SeriesUpdate) (*model.Series, error) {
	existing, err := s.repos.Series.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSeriesNotFound
	}
	if err := s.repos.Series.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.Series.FindByID(id)
}

// Delete 删除剧集，存储层失败以布尔值上报
func (s *SeriesService) Delete(id string) (bool, error) {
	existing, err := s.repos.Series.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrSeriesNotFound
	}
	if err := s.repos.Series.Delete(id); err != nil {
		log.Printf("[SeriesService] 删除剧集失败: %v", err)
		return false, nil
	}
	return true, nil
}

// AddSeason 为已有剧集追加一季
func (s *SeriesService) AddSeason(seriesID string, season *model.Season) (*model.Season, error) {
	exists, err := s.repos.Series.Exists(seriesID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrSeriesNotFound
	}
	season.SeriesID = &seriesID
	if err := s.repos.Season.Create(season); err != nil {
		return nil, err
	}
	return season, nil
}

// ListSeasons 获取剧集下的所有季
func (s *SeriesService) ListSeasons(seriesID string) ([]model.Season, error) {
	exists, err := s.repos.Series.Exists(seriesID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrSeriesNotFound
	}
	return s.repos.Season.FindBySeriesID(seriesID)
}

// UpdateSeason 部分更新季
func (s *SeriesService) UpdateSeason(id string, update SeasonUpdate) (*model.Season, error) {
	existing, err := s.repos.Season.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSeasonNotFound
	}
	if err := s.repos.Season.UpdateFields(id, update.fields()); err != nil {
		return nil, err
	}
	return s.repos.Season.FindByID(id)
}

// DeleteSeason 删除季，存储层失败以布尔值上报
func (s *SeriesService) DeleteSeason(id string) (bool, error) {
	existing, err := s.repos.Season.FindByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrSeasonNotFound
	}
	if err := s.repos.Season.Delete(id); err != nil {
		log.Printf("[SeriesService] 删除季失败: %v", err)
		return false, nil
	}
	return true, nil
}

// ep1Marker 第一集的标题约定标记
// 纯文本约定：任何包含该子串的标题都会命中（如 "STEP1 forward"）
const ep1Marker = "ep1"

// FirstEpisodeID 定位剧集第一季中标题含 EP1 标记的单集 ID
func (s *SeriesService) FirstEpisodeID(seriesID string) (string, error) {
	series, err := s.repos.Series.FindByIDWithSeasons(seriesID)
	if err != nil {
		return "", err
	}
	if series == nil {
		return "", ErrSeriesNotFound
	}

	var first *model.Season
	for i := range series.Seasons {
		if series.Seasons[i].Number == 1 {
			first = &series.Seasons[i]
			break
		}
	}
	if first == nil {
		return "", ErrSeasonNotFound
	}

	for _, episode := range first.Episodes {
		title := strings.ToLower(strings.TrimSpace(episode.Title))
		if strings.Contains(title, ep1Marker) {
			return episode.ID, nil
		}
	}
	return "", ErrEpisodeNotFound
}
