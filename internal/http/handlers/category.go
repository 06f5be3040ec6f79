package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newsdesk/internal/http/response"
	"github.com/newsdesk/internal/service"
)

// CategoryUpsertRequest 栏目创建/更新请求
type CategoryUpsertRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// ListCategories 栏目列表（按更新时间倒序）
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch categories", err)
		return
	}
	response.Success(c, categories)
}

// GetCategory 栏目详情
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.CategoryService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建栏目
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新栏目
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	category, err := h.CategoryService.Update(c.Param("id"), service.CategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除栏目（连带删除子栏目，文章引用置空）
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CategoryService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, nil)
}

// ListCategorySubCategories 某栏目下的子栏目列表
func (h *Handler) ListCategorySubCategories(c *gin.Context) {
	subcategories, err := h.SubCategoryService.ListByCategory(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, subcategories)
}
