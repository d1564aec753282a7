package handler

import (
	"io"
	"mime"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/utils"
)

// Latest 最新内容：电影与剧集各取年份最新的 4 条
func (h *Handler) Latest(c *gin.Context) {
	items, err := h.Catalog.Latest(c.Request.Context())
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, items)
}

// Search 标题搜索
func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		utils.BadRequest(c, "缺少搜索关键词")
		return
	}

	items, err := h.Catalog.Search(c.Request.Context(), keyword)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, items)
}

// DownloadFile 按存储标识读取视频/图片文件
func (h *Handler) DownloadFile(c *gin.Context) {
	token := c.Param("token")

	f, err := h.Files.Open(token)
	if err != nil {
		utils.NotFound(c, "文件不存在")
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(token))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(200)
	io.Copy(c.Writer, f)
}
