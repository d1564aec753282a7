package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

type createMovieRequest struct {
	Title               string  `json:"title" binding:"required"`
	ReleaseYear         *int    `json:"release_year"`
	Genre               string  `json:"genre"`
	Description         string  `json:"description"`
	Language            *string `json:"language"`
	Award               *string `json:"award"`
	ProductionCompanyID *string `json:"production_company_id"`
}

// CreateMovie 创建电影
func (h *Handler) CreateMovie(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	movie, err := h.Media.CreateMovie(&model.Episode{
		Title:               req.Title,
		ReleaseYear:         req.ReleaseYear,
		Genre:               req.Genre,
		Description:         req.Description,
		Language:            req.Language,
		Award:               req.Award,
		ProductionCompanyID: req.ProductionCompanyID,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Created(c, movie)
}

// CreateEpisode 在季下创建单集
func (h *Handler) CreateEpisode(c *gin.Context) {
	var req createEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	episode, err := h.Media.CreateEpisode(c.Param("seasonId"), &model.Episode{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Description: req.Description,
		Language:    req.Language,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, episode)
}

// GetEpisode 获取影片详情（含演职人员与角色）
func (h *Handler) GetEpisode(c *gin.Context) {
	episode, err := h.Media.Get(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, episode)
}

// ListMovies 获取全部电影
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.Media.ListMovies()
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, movies)
}

// ListSeasonEpisodes 获取季下的所有单集
func (h *Handler) ListSeasonEpisodes(c *gin.Context) {
	episodes, err := h.Media.ListBySeason(c.Param("seasonId"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, episodes)
}

// UpdateEpisode 部分更新影片
func (h *Handler) UpdateEpisode(c *gin.Context) {
	var update service.EpisodeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	episode, err := h.Media.Update(c.Param("id"), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Success(c, episode)
}

// DeleteEpisode 删除影片
func (h *Handler) DeleteEpisode(c *gin.Context) {
	ok, err := h.Media.Delete(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	h.Catalog.InvalidateLatest()
	utils.Success(c, gin.H{"deleted": ok})
}

// UploadVideo 上传影片视频文件
func (h *Handler) UploadVideo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "缺少上传文件")
		return
	}
	if file.Size > h.Config.MaxUploadMB*1024*1024 {
		utils.BadRequest(c, "文件超出大小限制")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	defer src.Close()

	token, err := h.Media.SaveVideo(c.Param("id"), filepath.Ext(file.Filename), src)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, gin.H{"video_file": token})
}

// UploadCover 上传影片封面图片
func (h *Handler) UploadCover(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "缺少上传文件")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	defer src.Close()

	token, err := h.Media.SaveCover(c.Param("id"), filepath.Ext(file.Filename), src)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, gin.H{"cover_image": token})
}
