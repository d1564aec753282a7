package service

import (
	"log"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
)

// PlaylistService 播放列表服务：懒创建默认列表与条目管理
type PlaylistService struct {
	repos *repository.Repositories
}

// NewPlaylistService 创建播放列表服务
func NewPlaylistService(repos *repository.Repositories) *PlaylistService {
	return &PlaylistService{repos: repos}
}

// GetOrCreateByUser 返回用户的播放列表，没有则创建一个空列表
// user_id 上的唯一索引加上 ON CONFLICT DO NOTHING 插入保证并发首次请求
// 也只会留下一条记录，随后统一回读
func (s *PlaylistService) GetOrCreateByUser(userID string) (*model.Playlist, error) {
	playlist, err := s.repos.Playlist.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if playlist != nil {
		return playlist, nil
	}

	if err := s.repos.Playlist.CreateIfAbsent(&model.Playlist{UserID: userID}); err != nil {
		return nil, err
	}
	return s.repos.Playlist.FindByUserID(userID)
}

// AddItemInput 新增条目的输入，EpisodeID 与 SeriesID 必须恰好填一个
type AddItemInput struct {
	PlaylistID string
	UserID     string
	EpisodeID  *string
	SeriesID   *string
}

// AddItem 向播放列表追加条目
// 传入的 playlistId 解析不到列表时不报错，而是为该用户静默创建/复用默认列表
func (s *PlaylistService) AddItem(in AddItemInput) (*model.PlaylistItem, error) {
	hasEpisode := in.EpisodeID != nil && *in.EpisodeID != ""
	hasSeries := in.SeriesID != nil && *in.SeriesID != ""

	if !hasEpisode && !hasSeries {
		return nil, ErrItemRefMissing
	}
	if hasEpisode && hasSeries {
		return nil, ErrItemRefConflict
	}

	if hasSeries {
		exists, err := s.repos.Series.Exists(*in.SeriesID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrSeriesNotFound
		}
	}

	playlist, err := s.repos.Playlist.FindByID(in.PlaylistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		playlist, err = s.GetOrCreateByUser(in.UserID)
		if err != nil {
			return nil, err
		}
	}

	item := &model.PlaylistItem{PlaylistID: playlist.ID}
	if hasEpisode {
		item.EpisodeID = in.EpisodeID
	} else {
		item.SeriesID = in.SeriesID
	}

	if err := s.repos.PlaylistItem.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 删除条目
// 条目不存在返回 ErrPlaylistItemNotFound；存储层删除失败以布尔值上报而不抛错
func (s *PlaylistService) RemoveItem(id string) (bool, error) {
	item, err := s.repos.PlaylistItem.FindByID(id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, ErrPlaylistItemNotFound
	}

	if err := s.repos.PlaylistItem.Delete(id); err != nil {
		log.Printf("[PlaylistService] 删除条目失败: %v", err)
		return false, nil
	}
	return true, nil
}
