package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
)

// AccountService 账号注册与资料维护
type AccountService struct {
	repo   repository.UserRepository
	policy config.PasswordPolicyConfig
}

// NewAccountService 创建账号服务
func NewAccountService(repo repository.UserRepository, policy config.PasswordPolicyConfig) *AccountService {
	return &AccountService{repo: repo, policy: policy}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfileUpdateInput 个人资料更新输入。nil 字段保留原值。
type ProfileUpdateInput struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// Register 注册新账号：邮箱唯一性预检在事务内完成，用户名取邮箱
func (s *AccountService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "a valid email address is required")
	}
	if err := validatePassword(s.policy, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Username:     email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hash),
		IsActive:     true,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewValidationError("email", "user with this email already exists")
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID 获取账号信息
func (s *AccountService) GetByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateProfile 更新当前账号资料，密码提供时按策略校验并重新散列
func (s *AccountService) UpdateProfile(id string, input ProfileUpdateInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Password != nil {
		if err := validatePassword(s.policy, *input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
