package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/service"
	"github.com/user/streamvault/internal/utils"
)

type createCompanyRequest struct {
	Name           string `json:"name" binding:"required"`
	FoundationYear *int   `json:"foundation_year"`
	Country        string `json:"country"`
	Website        string `json:"website"`
}

// CreateCompany 创建制作公司
func (h *Handler) CreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	company, err := h.Companies.Create(&model.ProductionCompany{
		Name:           req.Name,
		FoundationYear: req.FoundationYear,
		Country:        req.Country,
		Website:        req.Website,
	})
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Created(c, company)
}

// GetCompany 获取制作公司
func (h *Handler) GetCompany(c *gin.Context) {
	company, err := h.Companies.Get(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, company)
}

// ListCompanies 获取全部制作公司
func (h *Handler) ListCompanies(c *gin.Context) {
	list, err := h.Companies.List()
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, list)
}

// ListCompanyProductions 获取公司名下的所有影片
func (h *Handler) ListCompanyProductions(c *gin.Context) {
	episodes, err := h.Companies.ListProductions(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, episodes)
}

// UpdateCompany 部分更新制作公司
func (h *Handler) UpdateCompany(c *gin.Context) {
	var update service.CompanyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "参数不合法: "+err.Error())
		return
	}

	company, err := h.Companies.Update(c.Param("id"), update)
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, company)
}

// DeleteCompany 删除制作公司（先置空影片上的引用）
func (h *Handler) DeleteCompany(c *gin.Context) {
	ok, err := h.Companies.Delete(c.Param("id"))
	if err != nil {
		utils.FromAppError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": ok})
}
