package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

type createEpisodeRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" binding:"required"`
	ReleaseYear *int    `json:"release_year"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Language    *string `json:"language"`
}

type createSeasonRequest struct {
	ID          string                 `json:"id"`
	Number      int                    `json:"number" binding:"required,min=1"`
	ReleaseYear int                    `json:"release_year"`
	Episodes    []createEpisodeRequest `json:"episodes"`
}

type createSeriesRequest struct {
	Title       string                `json:"title" binding:"required"`
	Genre       string                `json:"genre"`
	ReleaseYear int                   `json:"release_year" binding:"required"`
	FinalYear   *int                  `json:"final_year"`
	Description string                `json:"description"`
	Seasons     []createSeasonRequest `json:"seasons" binding:"dive"`
}

// CreateSeries 级联创建剧集及其季与单集
// 请求里季可以自带预生成的 ID；缺省时由服务端补齐后再按 ID 关联各自的单集
func (h *Handler) CreateSeries(c *gin.Context) {
	var req createSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	series := &model.Series{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		FinalYear:   req.FinalYear,
		Description: req.Description,
	}

	seasons := make([]model.Season, 0, len(req.Seasons))
	episodesBySeason := make(map[string][]model.Episode)
	for _, sr := range req.Seasons {
		seasonID := sr.ID
		if seasonID == "" {
			seasonID = uuid.NewString()
		}
		seasons = append(seasons, model.Season{
			ID:          seasonID,
			Number:      sr.Number,
			ReleaseYear: sr.ReleaseYear,
		})
		for _, er := range sr.Episodes {
			episodesBySeason[seasonID] = append(episodesBySeason[seasonID], model.Episode{
				ID:          er.ID,
				Title:       er.Title,
				ReleaseYear: er.ReleaseYear,
				Genre:       er.Genre,
				Description: er.Description,
				Language:    er.Language,
			})
		}
	}

	created, err := h.Series.CreateCascade(series, seasons, episodesBySeason)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Created(c, created)
}

// GetSeries 获取剧集详情（含季与单集）
func (h *Handler) GetSeries(c *gin.Context) {
	series, err := h.Series.Get(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, series)
}

// ListSeries 获取全部剧集
func (h *Handler) ListSeries(c *gin.Context) {
	list, err := h.Series.List()
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, list)
}

// UpdateSeries 部分更新剧集
func (h *Handler) UpdateSeries(c *gin.Context) {
	var update service.SeriesUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	series, err := h.Series.Update(c.Param("id"), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Success(c, series)
}

// DeleteSeries 删除剧集
func (h *Handler) DeleteSeries(c *gin.Context) {
	ok, err := h.Series.Delete(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Success(c, gin.H{"deleted": ok})
}

// FirstEpisodeID 定位第一季中标题含 EP1 标记的单集
func (h *Handler) FirstEpisodeID(c *gin.Context) {
	id, err := h.Series.FirstEpisodeID(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"episode_id": id})
}

type addSeasonRequest struct {
	Number      int `json:"number" binding:"required,min=1"`
	ReleaseYear int `json:"release_year"`
}

// AddSeason 为剧集追加一季
func (h *Handler) AddSeason(c *gin.Context) {
	var req addSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	season, err := h.Series.AddSeason(c.Param("id"), &model.Season{
		Number:      req.Number,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, season)
}

// ListSeasons 获取剧集下的所有季
func (h *Handler) ListSeasons(c *gin.Context) {
	seasons, err := h.Series.ListSeasons(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, seasons)
}

// UpdateSeason 部分更新季
func (h *Handler) UpdateSeason(c *gin.Context) {
	var update service.SeasonUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	season, err := h.Series.UpdateSeason(c.Param("seasonId"), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, season)
}

// DeleteSeason 删除季
func (h *Handler) DeleteSeason(c *gin.Context) {
	ok, err := h.Series.DeleteSeason(c.Param("seasonId"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}
