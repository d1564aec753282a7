package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/handler"
	"github.com/user/streamvault/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "site": h.Config.SiteName})
	})

	// ==================== 认证 ====================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// ==================== 公开读取 ====================
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(h.Config.AppSecret))
	{
		api.GET("/latest", h.Latest)
		api.GET("/search", h.Search)

		api.GET("/series", h.ListSeries)
		api.GET("/series/:id", h.GetSeries)
		api.GET("/series/:id/ep1-id", h.FirstEpisodeID)
		api.GET("/series/:id/seasons", h.ListSeasons)
		api.GET("/seasons/:seasonId/episodes", h.ListSeasonEpisodes)

		api.GET("/movies", h.ListMovies)
		api.GET("/episodes/:id", h.GetEpisode)

		api.GET("/persons", h.ListPersons)
		api.GET("/persons/:id", h.GetPerson)
		api.GET("/character/episode/:id/persons-with-characters", h.PersonsWithCharacters)

		api.GET("/companies", h.ListCompanies)
		api.GET("/companies/:id", h.GetCompany)
		api.GET("/companies/:id/productions", h.ListCompanyProductions)

		api.GET("/users/:id/profile-image", h.ProfileImage)
	}

	// 视频与图片下载
	r.GET("/files/:token", h.DownloadFile)

	// ==================== 需要登录 ====================
	user := r.Group("/api")
	user.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		user.GET("/users/me", h.Me)
		user.PUT("/users/me", h.UpdateMe)
		user.PUT("/users/me/password", h.ChangePassword)
		user.POST("/users/me/profile-image", h.UploadProfileImage)

		user.GET("/playlist", h.GetPlaylist)
		user.POST("/playlist/items", h.AddPlaylistItem)
		user.DELETE("/playlist/items/:itemId", h.RemovePlaylistItem)
	}

	// ==================== 管理员 ====================
	admin := r.Group("/api")
	admin.Use(middleware.RequireAuth(h.Config.AppSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/series", h.CreateSeries)
		admin.PUT("/series/:id", h.UpdateSeries)
		admin.DELETE("/series/:id", h.DeleteSeries)
		admin.POST("/series/:id/seasons", h.AddSeason)
		admin.PUT("/seasons/:seasonId", h.UpdateSeason)
		admin.DELETE("/seasons/:seasonId", h.DeleteSeason)
		admin.POST("/seasons/:seasonId/episodes", h.CreateEpisode)

		admin.POST("/movies", h.CreateMovie)
		admin.PUT("/episodes/:id", h.UpdateEpisode)
		admin.DELETE("/episodes/:id", h.DeleteEpisode)
		admin.POST("/episodes/:id/video", h.UploadVideo)
		admin.POST("/episodes/:id/cover", h.UploadCover)

		admin.POST("/persons", h.CreatePerson)
		admin.PUT("/persons/:id", h.UpdatePerson)
		admin.DELETE("/persons/:id", h.DeletePerson)

		admin.POST("/character/episode/:id", h.CreateCharacter)
		admin.DELETE("/characters/:id", h.DeleteCharacter)
		admin.POST("/episodes/:id/persons", h.AttachPerson)

		admin.POST("/companies", h.CreateCompany)
		admin.PUT("/companies/:id", h.UpdateCompany)
		admin.DELETE("/companies/:id", h.DeleteCompany)

		admin.GET("/users", h.AdminListUsers)
		admin.PUT("/users/:id/role", h.AdminChangeRole)
		admin.DELETE("/users/:id", h.AdminDeleteUser)
	}
}
