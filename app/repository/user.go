package repository

import (
	"context"
	"errors"
	"time"

	"exam-bank/app/model"
	"exam-bank/app/utils"

	"gorm.io/gorm"
)

// UserRepository 用户表的存取操作
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register 注册新用户。密码在持久化前哈希，注册时间取当前时刻。
// 用户名重复时返回 ErrUsernameTaken 而不是底层存储错误。
func (r *UserRepository) Register(ctx context.Context, username, password, phone, qq string) (*model.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:     username,
		Password:     hashed,
		Phone:        phone,
		QQ:           qq,
		RegisterTime: time.Now().Format("2006-01-02 15:04:05"),
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login 按用户名查找并校验密码。
// 用户名不存在和密码错误统一返回 ErrInvalidCredentials。
func (r *UserRepository) Login(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// List 返回全部用户，按 ID 倒序
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete 按 ID 删除用户，ID 不存在时视为成功
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
