package service

import "github.com/user/streamvault/internal/apperr"

// 服务层错误，按类别在 HTTP 边界翻译为状态码
var (
	ErrSeriesNotFound         = apperr.NotFound("剧集不存在")
	ErrSeasonNotFound         = apperr.NotFound("季不存在")
	ErrEpisodeNotFound        = apperr.NotFound("影片不存在")
	ErrMovieNotFound          = apperr.NotFound("电影不存在")
	ErrPersonNotFound         = apperr.NotFound("人物不存在")
	ErrCharacterNotFound      = apperr.NotFound("角色不存在")
	ErrCompanyNotFound        = apperr.NotFound("制作公司不存在")
	ErrUserNotFound           = apperr.NotFound("用户不存在")
	ErrPlaylistItemNotFound   = apperr.NotFound("播放列表条目不存在")
	ErrProfilePictureNotFound = apperr.NotFound("头像不存在")

	ErrItemRefMissing  = apperr.InvalidArgument("必须指定影片或剧集之一")
	ErrItemRefConflict = apperr.InvalidArgument("不能同时指定影片和剧集")
	ErrInvalidRole     = apperr.InvalidArgument("无效的用户角色")
	ErrEmailTaken      = apperr.InvalidArgument("邮箱已被注册")
	ErrBadCredentials  = apperr.Unauthorized("邮箱或密码错误")
)
