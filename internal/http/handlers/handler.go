// Package handlers 聚合 HTTP 处理器
package handlers

import (
	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/service"
)

// Handler HTTP 处理器集合
type Handler struct {
	Config             *config.Config
	CategoryService    *service.CategoryService
	SubCategoryService *service.SubCategoryService
	ArticleService     *service.ArticleService
	AccountService     *service.AccountService
	AuthService        *service.AuthService
	UploadService      *service.UploadService
}

// NewHandler 创建处理器集合
func NewHandler(
	cfg *config.Config,
	categoryService *service.CategoryService,
	subCategoryService *service.SubCategoryService,
	articleService *service.ArticleService,
	accountService *service.AccountService,
	authService *service.AuthService,
	uploadService *service.UploadService,
) *Handler {
	return &Handler{
		Config:             cfg,
		CategoryService:    categoryService,
		SubCategoryService: subCategoryService,
		ArticleService:     articleService,
		AccountService:     accountService,
		AuthService:        authService,
		UploadService:      uploadService,
	}
}
