package models

import (
	"strings"

	"github.com/newsdesk/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultStaff 初始化默认编辑部账号。已有员工账号时跳过。
func InitDefaultStaff(email, password string) error {
	var count int64
	DB.Model(&User{}).Where("is_staff = ?", true).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "editor@example.com"
	}
	if password == "" {
		password = "editor123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Username:     strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		IsStaff:      true,
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := DB.Create(&staff).Error; err != nil {
		return err
	}

	if password == "editor123" {
		logger.Warnw("default_staff_created_with_default_password", "email", staff.Email)
		logger.Warnw("default_staff_password_change_required", "email", staff.Email)
	} else {
		logger.Warnw("default_staff_created", "email", staff.Email, "password_hidden", true)
	}
	return nil
}
