package database

import (
	"os"
	"path/filepath"

	"exam-bank/app/config"
	"exam-bank/app/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open 打开数据库连接并完成建表和默认账号初始化。
// 连接句柄由调用方持有并注入各仓库，进程退出时调用 Close。
func Open(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	// 确保数据库文件目录存在
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Errorf("创建数据库目录失败: %v", err)
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Errorf("连接数据库失败: %v", err)
		return nil, err
	}

	log.Infof("数据库连接成功: %s", cfg.Database.Path)

	// 自动迁移表结构（不存在则创建）
	if err := AutoMigrate(db); err != nil {
		log.Errorf("迁移表结构失败: %v", err)
		return nil, err
	}

	// 初始化默认管理员账户
	if err := EnsureDefaultAdmin(db, cfg, log); err != nil {
		log.Errorf("初始化管理员账户失败: %v", err)
		return nil, err
	}

	return db, nil
}

// Close 关闭数据库连接
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDir 确保目录存在
func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
