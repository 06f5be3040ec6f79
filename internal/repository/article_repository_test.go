package repository

import (
	"testing"
	"time"

	"github.com/newsdesk/internal/constants"
	"github.com/newsdesk/internal/models"
)

func seedArticle(t *testing.T, repo ArticleRepository, article *models.Article) *models.Article {
	t.Helper()
	if err := repo.Create(article); err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	return article
}

func TestArticleListFiltersAndCounts(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewArticleRepository(db)

	category := createCategory(t, categoryRepo, "Business", "business")
	now := time.Now()

	seedArticle(t, repo, &models.Article{
		Title:           strp("Markets Rally After Rate Decision"),
		Slug:            strp("markets-rally"),
		CategoryID:      &category.ID,
		Summary:         "Stocks climbed after the decision.",
		RelatedKeywords: "markets, rates",
		Tag:             constants.ArticleTagTrendingNow,
		IsPublished:     true,
		PublishedAt:     &now,
	})
	seedArticle(t, repo, &models.Article{
		Title:           strp("Quiet Week For Bonds"),
		Slug:            strp("quiet-week-for-bonds"),
		CategoryID:      &category.ID,
		Summary:         "Little moved in fixed income.",
		RelatedKeywords: "bonds",
		Tag:             constants.ArticleTagFeatured,
		IsPublished:     false,
	})
	seedArticle(t, repo, &models.Article{
		Title:       strp("Storm Hits Coast"),
		Slug:        strp("storm-hits-coast"),
		Summary:     "Heavy rain expected.",
		Tag:         constants.ArticleTagBreakingNews,
		IsPublished: true,
		PublishedAt: &now,
	})

	// 按栏目过滤
	items, total, err := repo.List(ArticleListFilter{CategoryID: category.ID})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("category filter want 2 got total=%d len=%d", total, len(items))
	}

	// 按标签过滤
	_, total, err = repo.List(ArticleListFilter{Tag: constants.ArticleTagBreakingNews})
	if err != nil {
		t.Fatalf("list by tag failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("tag filter want 1 got %d", total)
	}

	// 大小写不敏感搜索命中标题与摘要
	_, total, err = repo.List(ArticleListFilter{Search: "RATE"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("search want 1 got %d", total)
	}
	_, total, err = repo.List(ArticleListFilter{Search: "heavy RAIN"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("summary search want 1 got %d", total)
	}

	// related_keywords 子串匹配
	_, total, err = repo.List(ArticleListFilter{RelatedKeywords: "Bonds"})
	if err != nil {
		t.Fatalf("related keywords filter failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("related keywords want 1 got %d", total)
	}

	// 发布状态统计覆盖过滤后的完整集合
	published, draft, err := repo.CountByPublishState(ArticleListFilter{CategoryID: category.ID})
	if err != nil {
		t.Fatalf("count by publish state failed: %v", err)
	}
	if published != 1 || draft != 1 {
		t.Fatalf("counts want published=1 draft=1 got published=%d draft=%d", published, draft)
	}
	if published+draft != 2 {
		t.Fatalf("published+draft must equal total of the filtered set")
	}
}

func TestArticleListCombinesExactFilterWithSearch(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewArticleRepository(db)

	match := seedArticle(t, repo, &models.Article{
		Title:   strp("Budget Talks Stall"),
		Slug:    strp("budget-talks-stall"),
		Summary: "Negotiations dragged on.",
		Tag:     constants.ArticleTagFeatured,
	})
	seedArticle(t, repo, &models.Article{
		Title:   strp("Budget Cuts Loom"),
		Slug:    strp("budget-cuts-loom"),
		Summary: "Departments brace for cuts.",
		Tag:     constants.ArticleTagBreakingNews,
	})
	seedArticle(t, repo, &models.Article{
		Title:   strp("Transit Strike Ends"),
		Slug:    strp("transit-strike-ends"),
		Summary: "Trains back on schedule.",
		Tag:     constants.ArticleTagFeatured,
	})

	// 搜索条件必须与标签过滤叠加，而不是互相覆盖
	items, total, err := repo.List(ArticleListFilter{
		Tag:    constants.ArticleTagFeatured,
		Search: "BUDGET",
	})
	if err != nil {
		t.Fatalf("combined filter list failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("combined filter want 1 got total=%d len=%d", total, len(items))
	}
	if items[0].ID != match.ID {
		t.Fatalf("combined filter want %q got %q", match.ID, items[0].ID)
	}
}

func TestArticleListPaginationAndDefaultOrdering(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewArticleRepository(db)

	titles := []string{"First", "Second", "Third", "Fourth", "Fifth"}
	for _, title := range titles {
		slug := "slug-" + title
		seedArticle(t, repo, &models.Article{Title: strp(title), Slug: strp(slug)})
	}

	items, total, err := repo.List(ArticleListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paginated list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("page size want 2 got %d", len(items))
	}

	// 标题升序排序
	items, _, err = repo.List(ArticleListFilter{OrderBy: "title ASC", PageSize: 1})
	if err != nil {
		t.Fatalf("ordered list failed: %v", err)
	}
	if len(items) != 1 || *items[0].Title != "Fifth" {
		t.Fatalf("title ordering want Fifth first got %+v", items)
	}
}

func TestArticleIDsAssignedAndOpaque(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewArticleRepository(db)

	first := seedArticle(t, repo, &models.Article{Title: strp("One"), Slug: strp("one")})
	second := seedArticle(t, repo, &models.Article{Title: strp("Two"), Slug: strp("two")})

	if first.ID == "" || second.ID == "" {
		t.Fatalf("ids must be assigned at creation")
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique")
	}
	if len(first.ID) != 36 {
		t.Fatalf("id should be a uuid string, got %q", first.ID)
	}
}

func TestArticleGetByIDMissingReturnsNil(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewArticleRepository(db)

	article, err := repo.GetByID("missing")
	if err != nil {
		t.Fatalf("get missing article should not error: %v", err)
	}
	if article != nil {
		t.Fatalf("missing article should be nil")
	}
}
