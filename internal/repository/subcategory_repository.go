package repository

import (
	"errors"

	"github.com/newsdesk/internal/models"

	"gorm.io/gorm"
)

// SubCategoryRepository 子栏目数据访问接口
type SubCategoryRepository interface {
	List() ([]models.SubCategory, error)
	ListByCategory(categoryID string) ([]models.SubCategory, error)
	GetByID(id string) (*models.SubCategory, error)
	Create(subcategory *models.SubCategory) error
	Update(subcategory *models.SubCategory) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountBySlug(slug string, excludeID *string) (int64, error)
}

// GormSubCategoryRepository GORM 实现
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository 创建子栏目仓库
func NewSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// List 子栏目列表（最近更新优先）
func (r *GormSubCategoryRepository) List() ([]models.SubCategory, error) {
	var subcategories []models.SubCategory
	if err := r.db.Order("updated_at DESC").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

// ListByCategory 某栏目下的子栏目列表
func (r *GormSubCategoryRepository) ListByCategory(categoryID string) ([]models.SubCategory, error) {
	var subcategories []models.SubCategory
	if err := r.db.Where("category_id = ?", categoryID).
		Order("updated_at DESC").
		Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

// GetByID 根据 ID 获取子栏目
func (r *GormSubCategoryRepository) GetByID(id string) (*models.SubCategory, error) {
	var subcategory models.SubCategory
	if err := r.db.Where("id = ?", id).First(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

// Create 创建子栏目
func (r *GormSubCategoryRepository) Create(subcategory *models.SubCategory) error {
	return r.db.Create(subcategory).Error
}

// Update 更新子栏目
func (r *GormSubCategoryRepository) Update(subcategory *models.SubCategory) error {
	return r.db.Save(subcategory).Error
}

// Delete 删除子栏目。同一事务内将文章上的引用置空，仅删除该行。
func (r *GormSubCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).
			Where("sub_category_id = ?", id).
			Update("sub_category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.SubCategory{}).Error
	})
}

// CountByName 统计同名子栏目数量
func (r *GormSubCategoryRepository) CountByName(name string, excludeID *string) (int64, error) {
	return countSubCategoryField(r.db, "name", name, excludeID)
}

// CountBySlug 统计 slug 数量
func (r *GormSubCategoryRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	return countSubCategoryField(r.db, "slug", slug, excludeID)
}

func countSubCategoryField(db *gorm.DB, column, value string, excludeID *string) (int64, error) {
	var count int64
	query := db.Model(&models.SubCategory{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
