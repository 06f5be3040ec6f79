// Package router 注册路由与中间件
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/newsdesk/internal/cache"
	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/http/handlers"
	"github.com/newsdesk/internal/logger"
	"github.com/newsdesk/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := handlers.NewHandler(
		cfg,
		c.CategoryService,
		c.SubCategoryService,
		c.ArticleService,
		c.AccountService,
		c.AuthService,
		c.UploadService,
	)

	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", cache.Prefix()),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	authRequired := JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo)
	staffOnly := StaffRequiredMiddleware()

	r.GET("/health", h.Health)

	r.POST("/auth/login",
		RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")),
		h.Login)

	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.GET("/:id/subcategories", h.ListCategorySubCategories)
		categories.GET("/:id/articles", h.ListCategoryArticles)
		categories.POST("", authRequired, staffOnly, h.CreateCategory)
		categories.PUT("/:id", authRequired, staffOnly, h.UpdateCategory)
		categories.PATCH("/:id", authRequired, staffOnly, h.UpdateCategory)
		categories.DELETE("/:id", authRequired, staffOnly, h.DeleteCategory)
	}

	subcategories := r.Group("/subcategories")
	{
		subcategories.GET("", h.ListSubCategories)
		subcategories.GET("/:id", h.GetSubCategory)
		subcategories.GET("/:id/articles", h.ListSubCategoryArticles)
		subcategories.POST("", authRequired, staffOnly, h.CreateSubCategory)
		subcategories.PUT("/:id", authRequired, staffOnly, h.UpdateSubCategory)
		subcategories.PATCH("/:id", authRequired, staffOnly, h.UpdateSubCategory)
		subcategories.DELETE("/:id", authRequired, staffOnly, h.DeleteSubCategory)
	}

	articles := r.Group("/articles")
	{
		articles.GET("", h.ListArticles)
		articles.GET("/:id", h.GetArticle)
		articles.POST("", authRequired, staffOnly, h.CreateArticle)
		articles.PUT("/:id", authRequired, staffOnly, h.UpdateArticle)
		articles.PATCH("/:id", authRequired, staffOnly, h.UpdateArticle)
		articles.DELETE("/:id", authRequired, staffOnly, h.DeleteArticle)
	}

	r.POST("/upload", h.Upload)

	r.POST("/user", h.Register)
	r.PATCH("/user", authRequired, h.UpdateProfile)

	return r
}
