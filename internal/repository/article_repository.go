package repository

import (
	"errors"
	"strings"

	"github.com/newsdesk/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository 文章数据访问接口
type ArticleRepository interface {
	List(filter ArticleListFilter) ([]models.Article, int64, error)
	CountByPublishState(filter ArticleListFilter) (published int64, draft int64, err error)
	GetByID(id string) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id string) error
	CountByTitle(title string, excludeID *string) (int64, error)
	CountBySlug(slug string, excludeID *string) (int64, error)
}

// GormArticleRepository GORM 实现
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章仓库
func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// applyFilter 应用过滤条件（不含分页与排序），列表与统计共用。
func (r *GormArticleRepository) applyFilter(filter ArticleListFilter) *gorm.DB {
	query := r.db.Model(&models.Article{})

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != "" {
		query = query.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}
	if filter.Slug != "" {
		query = query.Where("slug = ?", filter.Slug)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}
	if keywords := strings.TrimSpace(filter.RelatedKeywords); keywords != "" {
		like := "%" + strings.ToLower(keywords) + "%"
		query = query.Where("LOWER(related_keywords) LIKE ?", like)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(slug) LIKE ?",
			like, like, like,
		)
	}
	return query
}

// List 文章列表，返回当前页数据与过滤后总数
func (r *GormArticleRepository) List(filter ArticleListFilter) ([]models.Article, int64, error) {
	query := r.applyFilter(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "updated_at DESC"
	}
	query = applyPagination(query.Order(orderBy), filter.Page, filter.PageSize)

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// CountByPublishState 统计过滤集合（分页前）中已发布与草稿的数量，
// 两次独立的 COUNT 查询。
func (r *GormArticleRepository) CountByPublishState(filter ArticleListFilter) (int64, int64, error) {
	var published, draft int64
	if err := r.applyFilter(filter).Where("is_published = ?", true).Count(&published).Error; err != nil {
		return 0, 0, err
	}
	if err := r.applyFilter(filter).Where("is_published = ?", false).Count(&draft).Error; err != nil {
		return 0, 0, err
	}
	return published, draft, nil
}

// GetByID 根据 ID 获取文章
func (r *GormArticleRepository) GetByID(id string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create 创建文章
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// Update 更新文章
func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete 删除文章
func (r *GormArticleRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Article{}).Error
}

// CountByTitle 统计同标题文章数量
func (r *GormArticleRepository) CountByTitle(title string, excludeID *string) (int64, error) {
	return countArticleField(r.db, "title", title, excludeID)
}

// CountBySlug 统计 slug 数量
func (r *GormArticleRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	return countArticleField(r.db, "slug", slug, excludeID)
}

func countArticleField(db *gorm.DB, column, value string, excludeID *string) (int64, error) {
	var count int64
	query := db.Model(&models.Article{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
