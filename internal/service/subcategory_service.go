package service

import (
	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
)

// SubCategoryService 子栏目业务服务
type SubCategoryService struct {
	repo         repository.SubCategoryRepository
	categoryRepo repository.CategoryRepository
}

// NewSubCategoryService 创建子栏目服务
func NewSubCategoryService(repo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository) *SubCategoryService {
	return &SubCategoryService{repo: repo, categoryRepo: categoryRepo}
}

// SubCategoryInput 创建/更新子栏目输入。nil 字段表示未提供。
type SubCategoryInput struct {
	Name       *string
	Slug       *string
	CategoryID *string
}

// List 子栏目列表
func (s *SubCategoryService) List() ([]models.SubCategory, error) {
	return s.repo.List()
}

// ListByCategory 某栏目下的子栏目列表。栏目不存在时返回 ErrNotFound。
func (s *SubCategoryService) ListByCategory(categoryID string) ([]models.SubCategory, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListByCategory(categoryID)
}

// GetByID 获取子栏目详情
func (s *SubCategoryService) GetByID(id string) (*models.SubCategory, error) {
	subcategory, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, ErrNotFound
	}
	return subcategory, nil
}

// Create 创建子栏目
func (s *SubCategoryService) Create(input SubCategoryInput) (*models.SubCategory, error) {
	subcategory := models.SubCategory{
		Name: normalizeOptionalText(input.Name),
		Slug: normalizeOptionalText(input.Slug),
	}
	deriveSlug(&subcategory.Slug, subcategory.Name)

	categoryID, err := s.resolveCategory(input.CategoryID)
	if err != nil {
		return nil, err
	}
	subcategory.CategoryID = categoryID

	if err := s.validateUniqueness(&subcategory, nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&subcategory); err != nil {
		return nil, err
	}
	return &subcategory, nil
}

// Update 更新子栏目（部分更新）
func (s *SubCategoryService) Update(id string, input SubCategoryInput) (*models.SubCategory, error) {
	subcategory, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		subcategory.Name = normalizeOptionalText(input.Name)
	}
	if input.Slug != nil {
		subcategory.Slug = normalizeOptionalText(input.Slug)
	}
	if input.CategoryID != nil {
		categoryID, err := s.resolveCategory(input.CategoryID)
		if err != nil {
			return nil, err
		}
		subcategory.CategoryID = categoryID
	}
	deriveSlug(&subcategory.Slug, subcategory.Name)

	if err := s.validateUniqueness(subcategory, &id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

// Delete 删除子栏目（仅该行，文章引用置空）
func (s *SubCategoryService) Delete(id string) error {
	subcategory, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// resolveCategory 校验所属栏目存在；空值表示不挂栏目。
func (s *SubCategoryService) resolveCategory(categoryID *string) (*string, error) {
	normalized := normalizeOptionalText(categoryID)
	if normalized == nil {
		return nil, nil
	}
	category, err := s.categoryRepo.GetByID(*normalized)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewValidationError("category", "category does not exist")
	}
	return normalized, nil
}

func (s *SubCategoryService) validateUniqueness(subcategory *models.SubCategory, excludeID *string) error {
	if subcategory.Name != nil {
		count, err := s.repo.CountByName(*subcategory.Name, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("name", "subcategory with this name already exists")
		}
	}
	if subcategory.Slug != nil {
		count, err := s.repo.CountBySlug(*subcategory.Slug, excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("slug", "subcategory with this slug already exists")
		}
	}
	return nil
}
