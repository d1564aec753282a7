package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/streamvault/internal/config"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/storage"
)

// Handler HTTP 处理器
type Handler struct {
	Repos     *repository.Repositories
	Config    *config.Config
	Files     *storage.FileStore
	Series    *service.SeriesService
	Media     *service.MediaService
	Cast      *service.CastService
	Playlist  *service.PlaylistService
	Catalog   *service.CatalogService
	Users     *service.UserService
	Persons   *service.PersonService
	Companies *service.CompanyService
}

// NewHandler 创建处理器并组装各服务
func NewHandler(repos *repository.Repositories, cfg *config.Config) (*Handler, error) {
	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	registerValidations()

	return &Handler{
		Repos:     repos,
		Config:    cfg,
		Files:     files,
		Series:    service.NewSeriesService(repos),
		Media:     service.NewMediaService(repos, files),
		Cast:      service.NewCastService(repos),
		Playlist:  service.NewPlaylistService(repos),
		Catalog:   service.NewCatalogService(repos, cfg.CacheTTL),
		Users:     service.NewUserService(repos, files),
		Persons:   service.NewPersonService(repos),
		Companies: service.NewCompanyService(repos),
	}, nil
}

// registerValidations 注册自定义校验规则
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// userrole 只接受封闭枚举里的角色值
		v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
			_, ok := model.ParseRole(fl.Field().String())
			return ok
		})
	}
}
