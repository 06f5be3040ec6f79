package service

import (
	"strings"
	"time"

	"github.com/newsdesk/internal/constants"
	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
)

// ArticleService 文章业务服务
type ArticleService struct {
	repo            repository.ArticleRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
}

// NewArticleService 创建文章服务
func NewArticleService(
	repo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
) *ArticleService {
	return &ArticleService{
		repo:            repo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

// ArticleInput 创建/更新文章输入。nil 字段表示未提供（部分更新时保留原值）。
type ArticleInput struct {
	Title           *string
	Slug            *string
	Author          *string
	CategoryID      *string
	SubCategoryID   *string
	Summary         *string
	Content         *string
	BannerImage     *string
	RelatedKeywords *string
	IsPublished     *bool
	Tag             *string
}

// ArticleListParams 文章列表查询参数
type ArticleListParams struct {
	Page            int
	PageSize        int
	CategoryID      string
	SubCategoryID   string
	Tag             string
	Slug            string
	Search          string
	RelatedKeywords string
	IsPublished     *bool
	Ordering        string
}

// ArticleListResult 文章列表结果：当前页数据、过滤后总数、发布状态统计
type ArticleListResult struct {
	Items     []models.Article
	Total     int64
	Published int64
	Draft     int64
}

var allowedArticleTags = func() map[string]struct{} {
	tags := make(map[string]struct{}, len(constants.ArticleTags))
	for _, tag := range constants.ArticleTags {
		tags[tag] = struct{}{}
	}
	return tags
}()

var allowedOrderColumns = map[string]string{
	constants.ArticleOrderUpdatedAt: "updated_at",
	constants.ArticleOrderCreatedAt: "created_at",
	constants.ArticleOrderTitle:     "title",
}

// List 过滤、搜索、排序、分页的文章列表，并统计发布/草稿数量
func (s *ArticleService) List(params ArticleListParams) (*ArticleListResult, error) {
	filter := repository.ArticleListFilter{
		Page:            params.Page,
		PageSize:        params.PageSize,
		CategoryID:      params.CategoryID,
		SubCategoryID:   params.SubCategoryID,
		Tag:             params.Tag,
		Slug:            params.Slug,
		Search:          params.Search,
		RelatedKeywords: params.RelatedKeywords,
		IsPublished:     params.IsPublished,
		OrderBy:         resolveArticleOrder(params.Ordering),
	}

	items, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	published, draft, err := s.repo.CountByPublishState(filter)
	if err != nil {
		return nil, err
	}
	return &ArticleListResult{
		Items:     items,
		Total:     total,
		Published: published,
		Draft:     draft,
	}, nil
}

// ListByCategory 某栏目下的文章列表（最近更新优先）。栏目不存在时返回 ErrNotFound。
func (s *ArticleService) ListByCategory(categoryID string, page, pageSize int) ([]models.Article, int64, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	if category == nil {
		return nil, 0, ErrNotFound
	}
	items, total, err := s.repo.List(repository.ArticleListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
	})
	return items, total, err
}

// ListBySubCategory 某子栏目下的文章列表（最近更新优先）
func (s *ArticleService) ListBySubCategory(subCategoryID string, page, pageSize int) ([]models.Article, int64, error) {
	subcategory, err := s.subCategoryRepo.GetByID(subCategoryID)
	if err != nil {
		return nil, 0, err
	}
	if subcategory == nil {
		return nil, 0, ErrNotFound
	}
	items, total, err := s.repo.List(repository.ArticleListFilter{
		Page:          page,
		PageSize:      pageSize,
		SubCategoryID: subCategoryID,
	})
	return items, total, err
}

// GetByID 获取文章详情
func (s *ArticleService) GetByID(id string) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Create 创建文章
func (s *ArticleService) Create(input ArticleInput) (*models.Article, error) {
	article := models.Article{
		Title: normalizeOptionalText(input.Title),
		Slug:  normalizeOptionalText(input.Slug),
	}
	deriveSlug(&article.Slug, article.Title)

	if err := s.applyFields(&article, input); err != nil {
		return nil, err
	}
	if err := s.validateUniqueness(&article, nil); err != nil {
		return nil, err
	}

	// 首次发布即创建时，直接盖发布时间戳
	if article.IsPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.repo.Create(&article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Update 更新文章（部分更新）
func (s *ArticleService) Update(id string, input ArticleInput) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		article.Title = normalizeOptionalText(input.Title)
	}
	if input.Slug != nil {
		article.Slug = normalizeOptionalText(input.Slug)
	}
	deriveSlug(&article.Slug, article.Title)

	if err := s.applyFields(article, input); err != nil {
		return nil, err
	}
	if err := s.validateUniqueness(article, &id); err != nil {
		return nil, err
	}

	// 发布时间戳只在 false→true 且尚未盖章时写入，之后保持不变
	if article.IsPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete 删除文章
func (s *ArticleService) Delete(id string) error {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// applyFields 应用标题/别名之外的字段，并校验枚举与引用
func (s *ArticleService) applyFields(article *models.Article, input ArticleInput) error {
	if input.Author != nil {
		article.Author = strings.TrimSpace(*input.Author)
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.BannerImage != nil {
		article.BannerImage = strings.TrimSpace(*input.BannerImage)
	}
	if input.RelatedKeywords != nil {
		article.RelatedKeywords = *input.RelatedKeywords
	}
	if input.IsPublished != nil {
		article.IsPublished = *input.IsPublished
	}

	if input.Tag != nil {
		tag := strings.TrimSpace(*input.Tag)
		if tag != "" {
			if _, ok := allowedArticleTags[tag]; !ok {
				return NewValidationError("tag", "invalid tag value")
			}
		}
		article.Tag = tag
	}

	if input.CategoryID != nil {
		normalized := normalizeOptionalText(input.CategoryID)
		if normalized != nil {
			category, err := s.categoryRepo.GetByID(*normalized)
			if err != nil {
				return err
			}
			if category == nil {
				return NewValidationError("category", "category does not exist")
			}
		}
		article.CategoryID = normalized
	}
	if input.SubCategoryID != nil {
		normalized := normalizeOptionalText(input.SubCategoryID)
		if normalized != nil {
			subcategory, err := s.subCategoryRepo.GetByID(*normalized)
			if err != nil {
				return err
			}
			if subcategory == nil {
				return NewValidationError("subcategory", "subcategory does not exist")
			}
		}
		article.SubCategoryID = normalized
	}
	return nil
}

func (s *ArticleService) validateUniqueness(article *models.Article, excludeID *string) error {
	if article.Title != nil {
		count, err := s.repo.CountByTitle(*article.Title, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("title", "article with this title already exists")
		}
	}
	if article.Slug != nil {
		count, err := s.repo.CountBySlug(*article.Slug, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("slug", "article with this slug already exists")
		}
	}
	return nil
}

// resolveArticleOrder 将 ordering 参数（可带 - 前缀）映射为白名单内的排序子句，
// 非法字段回退默认排序。
func resolveArticleOrder(ordering string) string {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return ""
	}
	direction := "ASC"
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		ordering = ordering[1:]
	}
	column, ok := allowedOrderColumns[ordering]
	if !ok {
		return ""
	}
	return column + " " + direction
}
