package service

import (
	"errors"
	"testing"
	"time"

	"github.com/newsdesk/internal/constants"
	"github.com/newsdesk/internal/repository"
)

func setupArticleService(t *testing.T) (*ArticleService, *CategoryService) {
	t.Helper()
	db := setupServiceTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	subRepo := repository.NewSubCategoryRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	return NewArticleService(articleRepo, categoryRepo, subRepo), NewCategoryService(categoryRepo)
}

func TestArticleCreateDerivesSlugFromTitle(t *testing.T) {
	svc, _ := setupArticleService(t)

	article, err := svc.Create(ArticleInput{Title: strPtr("Markets Rally After Rate Decision")})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.Slug == nil || *article.Slug != "markets-rally-after-rate-decision" {
		t.Fatalf("slug want markets-rally-after-rate-decision got %v", article.Slug)
	}
	if article.IsPublished {
		t.Fatalf("new article must default to draft")
	}
	if article.PublishedAt != nil {
		t.Fatalf("draft must not carry a publish timestamp")
	}
}

func TestArticleCreateDuplicateTitleReturnsFieldError(t *testing.T) {
	svc, _ := setupArticleService(t)

	if _, err := svc.Create(ArticleInput{Title: strPtr("Exclusive Report")}); err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	_, err := svc.Create(ArticleInput{
		Title: strPtr("Exclusive Report"),
		Slug:  strPtr("exclusive-report-2"),
	})
	assertFieldError(t, err, "title")
}

func TestArticleCreateInvalidTagReturnsFieldError(t *testing.T) {
	svc, _ := setupArticleService(t)

	_, err := svc.Create(ArticleInput{
		Title: strPtr("Tagged"),
		Tag:   strPtr("not-a-tag"),
	})
	assertFieldError(t, err, "tag")
}

func TestArticleCreateValidTagAccepted(t *testing.T) {
	svc, _ := setupArticleService(t)

	article, err := svc.Create(ArticleInput{
		Title: strPtr("Tagged"),
		Tag:   strPtr(constants.ArticleTagBreakingNews),
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.Tag != constants.ArticleTagBreakingNews {
		t.Fatalf("tag want %q got %q", constants.ArticleTagBreakingNews, article.Tag)
	}
}

func TestArticleCreateUnknownCategoryReturnsFieldError(t *testing.T) {
	svc, _ := setupArticleService(t)

	_, err := svc.Create(ArticleInput{
		Title:      strPtr("Orphaned"),
		CategoryID: strPtr("no-such-category"),
	})
	assertFieldError(t, err, "category")
}

func TestArticlePublishStamping(t *testing.T) {
	svc, _ := setupArticleService(t)

	// 创建即发布：盖发布时间戳
	article, err := svc.Create(ArticleInput{
		Title:       strPtr("Published At Birth"),
		IsPublished: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.PublishedAt == nil {
		t.Fatalf("publishing must stamp published_at")
	}
	if time.Since(*article.PublishedAt) > time.Minute {
		t.Fatalf("published_at should be near now, got %v", article.PublishedAt)
	}
	firstStamp := *article.PublishedAt

	// 再次保存保持发布状态：时间戳不变
	updated, err := svc.Update(article.ID, ArticleInput{
		Summary:     strPtr("expanded summary"),
		IsPublished: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update article failed: %v", err)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(firstStamp) {
		t.Fatalf("published_at must not change once stamped: want %v got %v", firstStamp, updated.PublishedAt)
	}

	// 撤回再发布：时间戳仍保留首次值
	if _, err := svc.Update(article.ID, ArticleInput{IsPublished: boolPtr(false)}); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	republished, err := svc.Update(article.ID, ArticleInput{IsPublished: boolPtr(true)})
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(firstStamp) {
		t.Fatalf("republish must keep the original stamp: want %v got %v", firstStamp, republished.PublishedAt)
	}
}

func TestArticleDraftToPublishedStampsOnTransition(t *testing.T) {
	svc, _ := setupArticleService(t)

	article, err := svc.Create(ArticleInput{Title: strPtr("Draft First")})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.PublishedAt != nil {
		t.Fatalf("draft must not be stamped")
	}

	published, err := svc.Update(article.ID, ArticleInput{IsPublished: boolPtr(true)})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatalf("transition to published must stamp published_at")
	}
}

func TestArticleUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _ := setupArticleService(t)

	if _, err := svc.Update("missing", ArticleInput{Title: strPtr("X")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestArticleListOrderingWhitelist(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"-updated_at", "updated_at DESC"},
		{"updated_at", "updated_at ASC"},
		{"-created_at", "created_at DESC"},
		{"title", "title ASC"},
		{"-title", "title DESC"},
		{"id; DROP TABLE articles", ""},
		{"unknown", ""},
	}
	for _, tc := range cases {
		if got := resolveArticleOrder(tc.in); got != tc.want {
			t.Errorf("resolveArticleOrder(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArticleListCountsMatchFilteredSet(t *testing.T) {
	svc, categorySvc := setupArticleService(t)

	category, err := categorySvc.Create(CategoryInput{Name: strPtr("Business")})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	for i, published := range []bool{true, true, false} {
		title := "Story " + string(rune('A'+i))
		if _, err := svc.Create(ArticleInput{
			Title:       strPtr(title),
			CategoryID:  strPtr(category.ID),
			IsPublished: boolPtr(published),
		}); err != nil {
			t.Fatalf("create article failed: %v", err)
		}
	}
	// 无关文章不计入
	if _, err := svc.Create(ArticleInput{Title: strPtr("Elsewhere")}); err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	result, err := svc.List(ArticleListParams{Page: 1, PageSize: 2, CategoryID: category.ID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("total want 3 got %d", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("page want 2 items got %d", len(result.Items))
	}
	if result.Published != 2 || result.Draft != 1 {
		t.Fatalf("counts want published=2 draft=1 got published=%d draft=%d", result.Published, result.Draft)
	}
	if result.Published+result.Draft != result.Total {
		t.Fatalf("published+draft must equal total")
	}
}
