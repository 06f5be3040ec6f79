package main

import (
	"time"

	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/constants"
	"github.com/newsdesk/internal/logger"
	"github.com/newsdesk/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认编辑账号
	if err := models.InitDefaultStaff("", ""); err != nil {
		stdLog.Printf("Failed to init default staff: %v", err)
	}

	// 添加栏目
	categories := []models.Category{
		{Name: ptr("World"), Slug: ptr("world")},
		{Name: ptr("Business"), Slug: ptr("business")},
		{Name: ptr("Technology"), Slug: ptr("technology")},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", *cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", *cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", *cat.Slug)
		}
	}

	// 获取栏目ID
	categoryIDs := map[string]string{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"world", "business", "technology"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[*cat.Slug] = cat.ID
	}
	worldID := categoryIDs["world"]
	technologyID := categoryIDs["technology"]

	// 添加子栏目
	subcategories := []models.SubCategory{
		{Name: ptr("Europe"), Slug: ptr("europe"), CategoryID: ptr(worldID)},
		{Name: ptr("Asia"), Slug: ptr("asia"), CategoryID: ptr(worldID)},
		{Name: ptr("AI"), Slug: ptr("ai"), CategoryID: ptr(technologyID)},
	}
	for _, sub := range subcategories {
		var existing models.SubCategory
		if err := models.DB.Where("slug = ?", sub.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&sub).Error; err != nil {
				stdLog.Printf("Failed to create subcategory %s: %v", *sub.Slug, err)
			} else {
				stdLog.Printf("Created subcategory: %s", *sub.Slug)
			}
		} else {
			stdLog.Printf("Subcategory already exists: %s", *sub.Slug)
		}
	}

	subCategoryIDs := map[string]string{}
	var subCategoryList []models.SubCategory
	if err := models.DB.Where("slug IN ?", []string{"europe", "asia", "ai"}).Find(&subCategoryList).Error; err != nil {
		stdLog.Printf("Failed to load subcategories: %v", err)
	}
	for _, sub := range subCategoryList {
		subCategoryIDs[*sub.Slug] = sub.ID
	}

	// 添加文章
	now := time.Now()
	articles := []models.Article{
		{
			Title:           ptr("Markets Rally After Rate Decision"),
			Slug:            ptr("markets-rally-after-rate-decision"),
			Author:          "Newsroom",
			CategoryID:      ptr(categoryIDs["business"]),
			Summary:         "Stocks climbed after the central bank held rates steady.",
			Content:         "Stocks climbed broadly on Friday after the central bank held rates steady for a third consecutive meeting.",
			RelatedKeywords: "markets, rates, stocks",
			Tag:             constants.ArticleTagTrendingNow,
			IsPublished:     true,
			PublishedAt:     &now,
		},
		{
			Title:           ptr("Summit Opens With Calls for Cooperation"),
			Slug:            ptr("summit-opens-with-calls-for-cooperation"),
			Author:          "Newsroom",
			CategoryID:      ptr(worldID),
			SubCategoryID:   ptr(subCategoryIDs["europe"]),
			Summary:         "Leaders gathered for the annual summit amid rising tensions.",
			Content:         "Leaders from more than forty countries gathered on Monday for the opening of the annual summit.",
			RelatedKeywords: "summit, diplomacy",
			Tag:             constants.ArticleTagBreakingNews,
			IsPublished:     true,
			PublishedAt:     &now,
		},
		{
			Title:           ptr("Chip Makers Race to Meet AI Demand"),
			Slug:            ptr("chip-makers-race-to-meet-ai-demand"),
			Author:          "Newsroom",
			CategoryID:      ptr(technologyID),
			SubCategoryID:   ptr(subCategoryIDs["ai"]),
			Summary:         "Demand for accelerators keeps outpacing supply.",
			Content:         "Chip makers are expanding capacity as demand for AI accelerators keeps outpacing supply.",
			RelatedKeywords: "chips, ai, semiconductors",
			Tag:             constants.ArticleTagFeatured,
			IsPublished:     false,
		},
	}
	for _, article := range articles {
		var existing models.Article
		if err := models.DB.Where("slug = ?", article.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&article).Error; err != nil {
				stdLog.Printf("Failed to create article %s: %v", *article.Slug, err)
			} else {
				stdLog.Printf("Created article: %s", *article.Slug)
			}
		} else {
			stdLog.Printf("Article already exists: %s", *article.Slug)
		}
	}

	stdLog.Printf("Seed finished")
}

func ptr(s string) *string {
	return &s
}
