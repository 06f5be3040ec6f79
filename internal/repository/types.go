package repository

// ArticleListFilter 查询文章列表的过滤条件
type ArticleListFilter struct {
	Page            int
	PageSize        int
	CategoryID      string
	SubCategoryID   string
	Tag             string
	Slug            string
	Search          string
	RelatedKeywords string
	IsPublished     *bool
	OrderBy         string
}
