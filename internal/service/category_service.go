package service

import (
	"strings"

	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
)

// CategoryService 栏目业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建栏目服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新栏目输入。nil 字段表示未提供（部分更新时保留原值）。
type CategoryInput struct {
	Name *string
	Slug *string
}

// List 栏目列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetByID 获取栏目详情
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建栏目
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	category := models.Category{
		Name: normalizeOptionalText(input.Name),
		Slug: normalizeOptionalText(input.Slug),
	}
	deriveSlug(&category.Slug, category.Name)

	if err := s.validateUniqueness(&category, nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 更新栏目（部分更新）
func (s *CategoryService) Update(id string, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		category.Name = normalizeOptionalText(input.Name)
	}
	if input.Slug != nil {
		category.Slug = normalizeOptionalText(input.Slug)
	}
	deriveSlug(&category.Slug, category.Name)

	if err := s.validateUniqueness(category, &id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除栏目（级联删除子栏目，文章引用置空）
func (s *CategoryService) Delete(id string) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *CategoryService) validateUniqueness(category *models.Category, excludeID *string) error {
	if category.Name != nil {
		count, err := s.repo.CountByName(*category.Name, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("name", "category with this name already exists")
		}
	}
	if category.Slug != nil {
		count, err := s.repo.CountBySlug(*category.Slug, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("slug", "category with this slug already exists")
		}
	}
	return nil
}

// normalizeOptionalText 去除首尾空白；空串按未设置处理
func normalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// deriveSlug 当 slug 为空且名称存在时，由名称派生 slug
func deriveSlug(slug **string, name *string) {
	if *slug != nil || name == nil {
		return
	}
	derived := Slugify(*name)
	if derived == "" {
		return
	}
	*slug = &derived
}
