package constants

// 文章标签常量
const (
	ArticleTagBreakingNews  = "breaking_news"
	ArticleTagTrendingNow   = "trending_now"
	ArticleTagFeatured      = "featured"
	ArticleTagExclusive     = "exclusive"
	ArticleTagAdvertisement = "advertisement"
	ArticleTagHappeningNow  = "happening_now"
)

// ArticleTags 文章标签枚举全集
var ArticleTags = []string{
	ArticleTagBreakingNews,
	ArticleTagTrendingNow,
	ArticleTagFeatured,
	ArticleTagExclusive,
	ArticleTagAdvertisement,
	ArticleTagHappeningNow,
}

// 文章列表排序字段白名单
const (
	ArticleOrderUpdatedAt = "updated_at"
	ArticleOrderCreatedAt = "created_at"
	ArticleOrderTitle     = "title"
)

// 分页默认值
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
