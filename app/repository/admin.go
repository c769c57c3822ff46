package repository

import (
	"context"
	"errors"

	"exam-bank/app/model"
	"exam-bank/app/utils"

	"gorm.io/gorm"
)

// AdminRepository 管理员表的存取操作
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库实例
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Login 校验管理员账号密码，账号不存在和密码错误统一返回 ErrInvalidCredentials
func (r *AdminRepository) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}
