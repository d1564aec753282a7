package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/middleware"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

// Me 获取当前用户资料
func (h *Handler) Me(c *gin.Context) {
	user, err := h.Users.Get(middleware.GetUserID(c))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, user)
}

// UpdateMe 部分更新当前用户资料
func (h *Handler) UpdateMe(c *gin.Context) {
	var update service.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	user, err := h.Users.Update(middleware.GetUserID(c), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, user)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword 修改当前用户密码
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	if err := h.Users.ChangePassword(middleware.GetUserID(c), req.OldPassword, req.NewPassword); err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"updated": true})
}

// UploadProfileImage 上传当前用户头像
func (h *Handler) UploadProfileImage(c *gin.Context) {
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

	token, err := h.Users.SaveProfileImage(middleware.GetUserID(c), file.Filename, src)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, gin.H{"profile_image": token})
}

// ProfileImage 读取用户头像
func (h *Handler) ProfileImage(c *gin.Context) {
	token, err := h.Users.ProfileImage(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"profile_image": token})
}

// AdminListUsers 管理员获取用户列表
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, users)
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required,userrole"`
}

// AdminChangeRole 管理员修改用户角色
func (h *Handler) AdminChangeRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的用户角色")
		return
	}

	if err := h.Users.ChangeRole(c.Param("id"), req.Role); err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"updated": true})
}

// AdminDeleteUser 管理员删除用户
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	ok, err := h.Users.Delete(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}
