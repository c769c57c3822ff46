package database

import (
	"fmt"

	"exam-bank/app/config"
	"exam-bank/app/logger"
	"exam-bank/app/model"
	"exam-bank/app/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnsureDefaultAdmin 初始化默认管理员账户。
// 使用 INSERT ... ON CONFLICT DO NOTHING，由用户名唯一约束保证幂等，
// 避免先查询后插入的竞态。已存在的账号不会被覆盖。
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if cfg.Server.AdminUsername == "" || cfg.Server.AdminPassword == "" {
		return fmt.Errorf("管理员账户配置不能为空，请在配置文件中设置 admin_username 和 admin_password")
	}

	hashedPassword, err := utils.HashPassword(cfg.Server.AdminPassword)
	if err != nil {
		return fmt.Errorf("哈希密码失败: %v", err)
	}

	admin := model.Admin{
		Username: cfg.Server.AdminUsername,
		Password: hashedPassword,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&admin)
	if result.Error != nil {
		return fmt.Errorf("创建管理员账户失败: %v", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Infof("管理员账户 '%s' 创建成功", cfg.Server.AdminUsername)
	} else {
		log.Infof("管理员账户 '%s' 已存在，跳过初始化", cfg.Server.AdminUsername)
	}
	return nil
}
