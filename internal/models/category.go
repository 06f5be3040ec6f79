package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category 栏目表
type Category struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`        // 主键（UUID，创建后不可变）
	Name      *string   `gorm:"type:varchar(100);uniqueIndex" json:"name"`    // 栏目名（存在时唯一）
	Slug      *string   `gorm:"type:varchar(255);uniqueIndex" json:"slug"`    // 唯一标识（缺省时由名称派生）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                      // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate 创建前分配 UUID 主键
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SubCategory 子栏目表，归属某个栏目；栏目删除时级联删除
type SubCategory struct {
	ID         string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CategoryID *string   `gorm:"type:varchar(36);index" json:"category"` // 所属栏目（可空）
	Name       *string   `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	Slug       *string   `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`
}

// TableName 指定表名
func (SubCategory) TableName() string {
	return "subcategories"
}

// BeforeCreate 创建前分配 UUID 主键
func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
