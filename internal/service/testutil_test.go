package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/newsdesk/internal/models"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.SubCategory{}, &models.Article{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a validation error on %q, got nil", field)
	}
	verr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error on %q, got %v", field, err)
	}
	if len(verr.Fields[field]) == 0 {
		t.Fatalf("expected error on field %q, got %v", field, verr.Fields)
	}
}
