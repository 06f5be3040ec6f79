// Package provider 组装依赖
package provider

import (
	"github.com/newsdesk/internal/cache"
	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/logger"
	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
	"github.com/newsdesk/internal/service"
	"github.com/newsdesk/internal/storage"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	ArticleRepo     repository.ArticleRepository
	UserRepo        repository.UserRepository

	// Services
	CategoryService    *service.CategoryService
	SubCategoryService *service.SubCategoryService
	ArticleService     *service.ArticleService
	AccountService     *service.AccountService
	AuthService        *service.AuthService
	UploadService      *service.UploadService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SubCategoryRepo = repository.NewSubCategoryRepository(db)
	c.ArticleRepo = repository.NewArticleRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
}

func (c *Container) initServices() {
	store, err := storage.NewS3Store(c.Config.Storage)
	if err != nil {
		logger.Errorw("provider_init_storage_failed", "error", err)
	}
	var objectStore service.ObjectStore
	if store != nil {
		objectStore = store
	}

	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.SubCategoryService = service.NewSubCategoryService(c.SubCategoryRepo, c.CategoryRepo)
	c.ArticleService = service.NewArticleService(c.ArticleRepo, c.CategoryRepo, c.SubCategoryRepo)
	c.AccountService = service.NewAccountService(c.UserRepo, c.Config.Security.PasswordPolicy)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config, objectStore)
}
