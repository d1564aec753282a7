package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

type createPersonRequest struct {
	Name   string  `json:"name" binding:"required"`
	Age    *int    `json:"age"`
	Role   *string `json:"role"`
	Awards *string `json:"awards"`
	Gender *string `json:"gender"`
}

// CreatePerson 创建人物
func (h *Handler) CreatePerson(c *gin.Context) {
	var req createPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	person, err := h.Persons.Create(&model.Person{
		Name:   req.Name,
		Age:    req.Age,
		Role:   req.Role,
		Awards: req.Awards,
		Gender: req.Gender,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, person)
}

// GetPerson 获取人物
func (h *Handler) GetPerson(c *gin.Context) {
	person, err := h.Persons.Get(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, person)
}

// ListPersons 获取全部人物
func (h *Handler) ListPersons(c *gin.Context) {
	list, err := h.Persons.List()
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, list)
}

// UpdatePerson 部分更新人物
func (h *Handler) UpdatePerson(c *gin.Context) {
	var update service.PersonUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	person, err := h.Persons.Update(c.Param("id"), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, person)
}

// DeletePerson 删除人物（连带摘除出演关系与名下角色）
func (h *Handler) DeletePerson(c *gin.Context) {
	ok, err := h.Persons.Delete(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}

type createCharacterRequest struct {
	PersonID string  `json:"person_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role"`
	Nickname *string `json:"nickname"`
}

// CreateCharacter 为影片创建角色并绑定人物
func (h *Handler) CreateCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	character, err := h.Cast.AddCharacter(c.Param("id"), req.PersonID, service.CharacterInput{
		Name:     req.Name,
		Role:     req.Role,
		Nickname: req.Nickname,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, character)
}

// DeleteCharacter 删除角色
func (h *Handler) DeleteCharacter(c *gin.Context) {
	ok, err := h.Cast.RemoveCharacter(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}

type attachPersonRequest struct {
	PersonID string `json:"person_id" binding:"required"`
}

// AttachPerson 建立人物与影片的出演关系
func (h *Handler) AttachPerson(c *gin.Context) {
	var req attachPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	if err := h.Cast.AttachPerson(c.Param("id"), req.PersonID); err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"attached": true})
}

// PersonsWithCharacters 影片的演职人员及各自饰演的角色
func (h *Handler) PersonsWithCharacters(c *gin.Context) {
	groups, err := h.Cast.PersonsWithCharacters(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, groups)
}
