package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/internal/http/response"
	"github.com/newsdesk/internal/service"
)

// ArticleUpsertRequest 文章创建/更新请求
type ArticleUpsertRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Author          *string `json:"author"`
	Category        *string `json:"category"`
	SubCategory     *string `json:"subcategory"`
	Summary         *string `json:"summary"`
	Content         *string `json:"content"`
	BannerImage     *string `json:"banner_image"`
	RelatedKeywords *string `json:"related_keywords"`
	IsPublished     *bool   `json:"is_published"`
	Tag             *string `json:"tag"`
}

func (r ArticleUpsertRequest) toInput() service.ArticleInput {
	return service.ArticleInput{
		Title:           r.Title,
		Slug:            r.Slug,
		Author:          r.Author,
		CategoryID:      r.Category,
		SubCategoryID:   r.SubCategory,
		Summary:         r.Summary,
		Content:         r.Content,
		BannerImage:     r.BannerImage,
		RelatedKeywords: r.RelatedKeywords,
		IsPublished:     r.IsPublished,
		Tag:             r.Tag,
	}
}

// ListArticles 文章列表：过滤、搜索、排序、分页，附带发布状态统计
func (h *Handler) ListArticles(c *gin.Context) {
	page, pageSize := h.parsePagination(c)

	var isPublished *bool
	if raw := c.Query("is_published"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_published value", err)
			return
		}
		isPublished = &parsed
	}

	result, err := h.ArticleService.List(service.ArticleListParams{
		Page:            page,
		PageSize:        pageSize,
		CategoryID:      c.Query("category"),
		SubCategoryID:   c.Query("subcategory"),
		Tag:             c.Query("tag"),
		Slug:            c.Query("slug"),
		Search:          c.Query("search"),
		RelatedKeywords: c.Query("related_keywords"),
		IsPublished:     isPublished,
		Ordering:        c.Query("ordering"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch articles", err)
		return
	}

	response.SuccessWithPage(c, response.Page{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: response.TotalPages(result.Total, pageSize),
		TotalItems: result.Total,
		Results:    result.Items,
		Counts: &response.PageCounts{
			Published: result.Published,
			Draft:     result.Draft,
		},
	})
}

// ListCategoryArticles 某栏目下的文章列表
func (h *Handler) ListCategoryArticles(c *gin.Context) {
	page, pageSize := h.parsePagination(c)

	articles, total, err := h.ArticleService.ListByCategory(c.Param("id"), page, pageSize)
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}

	response.SuccessWithPage(c, response.Page{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: response.TotalPages(total, pageSize),
		TotalItems: total,
		Results:    articles,
	})
}

// ListSubCategoryArticles 某子栏目下的文章列表
func (h *Handler) ListSubCategoryArticles(c *gin.Context) {
	page, pageSize := h.parsePagination(c)

	articles, total, err := h.ArticleService.ListBySubCategory(c.Param("id"), page, pageSize)
	if err != nil {
		respondServiceError(c, err, "subcategory not found")
		return
	}

	response.SuccessWithPage(c, response.Page{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: response.TotalPages(total, pageSize),
		TotalItems: total,
		Results:    articles,
	})
}

// GetArticle 文章详情
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.ArticleService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "article not found")
		return
	}
	response.Success(c, article)
}

// CreateArticle 创建文章
func (h *Handler) CreateArticle(c *gin.Context) {
	var req ArticleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	article, err := h.ArticleService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "article not found")
		return
	}
	response.Created(c, article)
}

// UpdateArticle 更新文章（部分更新）
func (h *Handler) UpdateArticle(c *gin.Context) {
	var req ArticleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	article, err := h.ArticleService.Update(c.Param("id"), req.toInput())
	if err != nil {
		respondServiceError(c, err, "article not found")
		return
	}
	response.Success(c, article)
}

// DeleteArticle 删除文章
func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.ArticleService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err, "article not found")
		return
	}
	response.Success(c, nil)
}
