package service

import (
	"fmt"
	"unicode"

	"github.com/newsdesk/internal/config"
)

// validatePassword 校验密码是否符合策略，违规时返回字段级错误。
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters", policy.MinLength))
	}

	var hasUpper, hasLower, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return NewValidationError("password", "password must contain an uppercase letter")
	}
	if policy.RequireLower && !hasLower {
		return NewValidationError("password", "password must contain a lowercase letter")
	}
	if policy.RequireNumber && !hasNumber {
		return NewValidationError("password", "password must contain a digit")
	}
	return nil
}
