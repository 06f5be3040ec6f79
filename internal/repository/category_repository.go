package repository

import (
	"errors"

	"github.com/newsdesk/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 栏目数据访问接口
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountBySlug(slug string, excludeID *string) (int64, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建栏目仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 栏目列表（最近更新优先）
func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("updated_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 根据 ID 获取栏目
func (r *GormCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create 创建栏目
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update 更新栏目
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete 删除栏目。同一事务内：级联删除子栏目，
// 文章上对该栏目及其子栏目的引用置空（文章本身保留）。
func (r *GormCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var subIDs []string
		if err := tx.Model(&models.SubCategory{}).
			Where("category_id = ?", id).
			Pluck("id", &subIDs).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Article{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if len(subIDs) > 0 {
			if err := tx.Model(&models.Article{}).
				Where("sub_category_id IN ?", subIDs).
				Update("sub_category_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", subIDs).
				Delete(&models.SubCategory{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&models.Category{}).Error
	})
}

// CountByName 统计同名栏目数量
func (r *GormCategoryRepository) CountByName(name string, excludeID *string) (int64, error) {
	return countCategoryField(r.db, "name", name, excludeID)
}

// CountBySlug 统计 slug 数量
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	return countCategoryField(r.db, "slug", slug, excludeID)
}

func countCategoryField(db *gorm.DB, column, value string, excludeID *string) (int64, error) {
	var count int64
	query := db.Model(&models.Category{}).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
