package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/middleware"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

// GetPlaylist 获取当前用户的播放列表，没有则创建空列表
func (h *Handler) GetPlaylist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		utils.Unauthorized(c, "")
		return
	}

	playlist, err := h.Playlist.GetOrCreateByUser(userID)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, playlist)
}

type addPlaylistItemRequest struct {
	PlaylistID string  `json:"playlist_id"`
	EpisodeID  *string `json:"episode_id"`
	SeriesID   *string `json:"series_id"`
}

// AddPlaylistItem 向播放列表追加条目
func (h *Handler) AddPlaylistItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		utils.Unauthorized(c, "")
		return
	}

	var req addPlaylistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	item, err := h.Playlist.AddItem(service.AddItemInput{
		PlaylistID: req.PlaylistID,
		UserID:     userID,
		EpisodeID:  req.EpisodeID,
		SeriesID:   req.SeriesID,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, item)
}

// RemovePlaylistItem 删除播放列表条目
func (h *Handler) RemovePlaylistItem(c *gin.Context) {
	ok, err := h.Playlist.RemoveItem(c.Param("itemId"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}
