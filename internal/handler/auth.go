package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/middleware"
	"github.com/user/streamvault/internal/utils"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	user, err := h.Users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}

	utils.Created(c, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录，成功签发 JWT
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	user, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, string(user.Role), h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}

	// 同时写入 Cookie，方便浏览器端直接续用
	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	utils.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}
