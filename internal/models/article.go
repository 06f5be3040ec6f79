package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article 文章表
type Article struct {
	ID              string     `gorm:"type:varchar(36);primarykey" json:"id"`
	Title           *string    `gorm:"type:varchar(255);uniqueIndex" json:"title"` // 标题（全局唯一）
	Slug            *string    `gorm:"type:varchar(255);uniqueIndex" json:"slug"`  // 唯一标识（缺省时由标题派生）
	Author          string     `gorm:"type:varchar(100)" json:"author"`
	CategoryID      *string    `gorm:"type:varchar(36);index" json:"category"`    // 所属栏目；栏目删除时置空
	SubCategoryID   *string    `gorm:"type:varchar(36);index" json:"subcategory"` // 所属子栏目；子栏目删除时置空
	Summary         string     `gorm:"type:text" json:"summary"`
	Content         string     `gorm:"type:text" json:"content"`
	BannerImage     string     `gorm:"type:varchar(600)" json:"banner_image"`
	RelatedKeywords string     `gorm:"type:text" json:"related_keywords"` // 关联关键词（用于子串过滤）
	IsPublished     bool       `gorm:"default:false;index" json:"is_published"`
	PublishedAt     *time.Time `gorm:"index" json:"published_at"` // 首次发布时间，设置后不再改写
	Tag             string     `gorm:"type:varchar(100);index" json:"tag"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"index" json:"updated_at"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// BeforeCreate 创建前分配 UUID 主键
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
