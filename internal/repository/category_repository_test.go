package repository

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/newsdesk/internal/models"
)

func setupTaxonomyRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.SubCategory{}, &models.Article{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func strp(s string) *string {
	return &s
}

func createCategory(t *testing.T, repo CategoryRepository, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: strp(name), Slug: strp(slug)}
	if err := repo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func TestCategoryDeleteCascadesSubCategoriesAndClearsArticleRefs(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	categoryRepo := NewCategoryRepository(db)
	subRepo := NewSubCategoryRepository(db)
	articleRepo := NewArticleRepository(db)

	category := createCategory(t, categoryRepo, "World", "world")
	other := createCategory(t, categoryRepo, "Business", "business")

	sub := &models.SubCategory{Name: strp("Europe"), Slug: strp("europe"), CategoryID: &category.ID}
	if err := subRepo.Create(sub); err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}
	otherSub := &models.SubCategory{Name: strp("Markets"), Slug: strp("markets"), CategoryID: &other.ID}
	if err := subRepo.Create(otherSub); err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}

	article := &models.Article{
		Title:         strp("Summit Opens"),
		Slug:          strp("summit-opens"),
		CategoryID:    &category.ID,
		SubCategoryID: &sub.ID,
	}
	if err := articleRepo.Create(article); err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	untouched := &models.Article{
		Title:         strp("Markets Rally"),
		Slug:          strp("markets-rally"),
		CategoryID:    &other.ID,
		SubCategoryID: &otherSub.ID,
	}
	if err := articleRepo.Create(untouched); err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	if err := categoryRepo.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	gone, err := subRepo.GetByID(sub.ID)
	if err != nil {
		t.Fatalf("get subcategory failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("subcategory should be deleted with its category")
	}

	reloaded, err := articleRepo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if reloaded == nil {
		t.Fatalf("article must survive category delete")
	}
	if reloaded.CategoryID != nil || reloaded.SubCategoryID != nil {
		t.Fatalf("article taxonomy refs should be cleared, got category=%v subcategory=%v",
			reloaded.CategoryID, reloaded.SubCategoryID)
	}

	kept, err := articleRepo.GetByID(untouched.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if kept.CategoryID == nil || kept.SubCategoryID == nil {
		t.Fatalf("unrelated article refs must be untouched")
	}
}

func TestSubCategoryDeleteClearsArticleRefs(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	categoryRepo := NewCategoryRepository(db)
	subRepo := NewSubCategoryRepository(db)
	articleRepo := NewArticleRepository(db)

	category := createCategory(t, categoryRepo, "Technology", "technology")
	sub := &models.SubCategory{Name: strp("AI"), Slug: strp("ai"), CategoryID: &category.ID}
	if err := subRepo.Create(sub); err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}

	article := &models.Article{
		Title:         strp("Chip Makers Race"),
		Slug:          strp("chip-makers-race"),
		CategoryID:    &category.ID,
		SubCategoryID: &sub.ID,
	}
	if err := articleRepo.Create(article); err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	if err := subRepo.Delete(sub.ID); err != nil {
		t.Fatalf("delete subcategory failed: %v", err)
	}

	reloaded, err := articleRepo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if reloaded.SubCategoryID != nil {
		t.Fatalf("subcategory ref should be cleared")
	}
	if reloaded.CategoryID == nil {
		t.Fatalf("category ref must be untouched by subcategory delete")
	}
}

func TestCategoryGetByIDMissingReturnsNil(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewCategoryRepository(db)

	category, err := repo.GetByID("no-such-id")
	if err != nil {
		t.Fatalf("get missing category should not error: %v", err)
	}
	if category != nil {
		t.Fatalf("missing category should be nil")
	}
}

func TestCategoryCountByNameExcludesGivenID(t *testing.T) {
	db := setupTaxonomyRepositoryTest(t)
	repo := NewCategoryRepository(db)

	category := createCategory(t, repo, "World", "world")

	count, err := repo.CountByName("World", nil)
	if err != nil {
		t.Fatalf("count by name failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountByName("World", &category.ID)
	if err != nil {
		t.Fatalf("count by name failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding own id want 0 got %d", count)
	}
}
