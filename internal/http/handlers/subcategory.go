package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdesk/internal/http/response"
	"github.com/newsdesk/internal/service"
)

// SubCategoryUpsertRequest 子栏目创建/更新请求
type SubCategoryUpsertRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Category *string `json:"category"`
}

// ListSubCategories 子栏目列表（按更新时间倒序）
func (h *Handler) ListSubCategories(c *gin.Context) {
	subcategories, err := h.SubCategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch subcategories", err)
		return
	}
	response.Success(c, subcategories)
}

// GetSubCategory 子栏目详情
func (h *Handler) GetSubCategory(c *gin.Context) {
	subcategory, err := h.SubCategoryService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "subcategory not found")
		return
	}
	response.Success(c, subcategory)
}

// CreateSubCategory 创建子栏目
func (h *Handler) CreateSubCategory(c *gin.Context) {
	var req SubCategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	subcategory, err := h.SubCategoryService.Create(service.SubCategoryInput{
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.Category,
	})
	if err != nil {
		respondServiceError(c, err, "subcategory not found")
		return
	}
	response.Created(c, subcategory)
}

// UpdateSubCategory 更新子栏目
func (h *Handler) UpdateSubCategory(c *gin.Context) {
	var req SubCategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	subcategory, err := h.SubCategoryService.Update(c.Param("id"), service.SubCategoryInput{
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.Category,
	})
	if err != nil {
		respondServiceError(c, err, "subcategory not found")
		return
	}
	response.Success(c, subcategory)
}

// DeleteSubCategory 删除子栏目（文章引用置空）
func (h *Handler) DeleteSubCategory(c *gin.Context) {
	if err := h.SubCategoryService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err, "subcategory not found")
		return
	}
	response.Success(c, nil)
}
