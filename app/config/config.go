package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`

	// mu 保护热更新的配置段，监听协程写、请求协程读
	mu sync.RWMutex
}

type ServerConfig struct {
	Port          string `mapstructure:"port"`
	AdminUsername string `mapstructure:"admin_username"` // 默认管理员账号
	AdminPassword string `mapstructure:"admin_password"` // 默认管理员密码
	DistPath      string `mapstructure:"dist_path"`      // 前端打包目录
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"` // SQLite 数据库文件路径
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`      // json 或 text
	Output     string `mapstructure:"output"`      // stdout 或 file
	MaxSize    int    `mapstructure:"max_size"`    // 兆字节
	MaxBackups int    `mapstructure:"max_backups"` // 备份数量
	MaxAge     int    `mapstructure:"max_age"`     // 天数
	Compress   bool   `mapstructure:"compress"`    // 是否压缩旧文件
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`      // JWT 密钥
	ExpireTime int    `mapstructure:"expire_time"` // 过期时间（小时）
	Issuer     string `mapstructure:"issuer"`      // 签发者
}

func Load() *Config {
	setDefaults()

	// 读取配置
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("未找到配置文件，使用默认配置")
		} else {
			log.Fatalf("读取配置文件出错: %v", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("无法解码配置: %v", err)
	}

	// 验证配置
	if err := validateConfig(&config); err != nil {
		log.Fatalf("配置验证失败: %v", err)
	}

	return &config
}

// Watch 监听配置文件变化，变化时重新解码到当前实例。
// 只覆盖可以热生效的部分，端口等启动期配置的变化需要重启。
func (c *Config) Watch(onChange func(e fsnotify.Event)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		var next Config
		if err := viper.Unmarshal(&next); err != nil {
			log.Printf("配置文件变化但解码失败: %v", err)
			return
		}
		c.applyHotUpdate(&next)
		if onChange != nil {
			onChange(e)
		}
	})
	viper.WatchConfig()
}

// applyHotUpdate 在锁内应用可热生效的配置段
func (c *Config) applyHotUpdate(next *Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.JWT = next.JWT
}

// JWTSnapshot 返回 JWT 配置的一致快照。
// 令牌签发/验证在请求协程里读取配置，必须经由快照
// 与监听协程的热更新写入隔离。
func (c *Config) JWTSnapshot() JWTConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.JWT
}

// setDefaults 设置默认配置
func setDefaults() {
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.admin_username", "admin")
	viper.SetDefault("server.admin_password", "123456")
	viper.SetDefault("server.dist_path", "dist")

	viper.SetDefault("database.path", "data/exam.db")

	// 日志默认配置
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("log.compress", true)

	// JWT默认配置
	viper.SetDefault("jwt.secret", "408-exam-2026-secret-key-987654")
	viper.SetDefault("jwt.expire_time", 2) // 2小时
	viper.SetDefault("jwt.issuer", "exam-bank")
}

// validateConfig 验证配置的有效性
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("服务器端口未设置")
	}
	if config.Database.Path == "" {
		return fmt.Errorf("数据库路径未设置")
	}
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT密钥未设置")
	}
	if config.JWT.ExpireTime <= 0 {
		return fmt.Errorf("JWT过期时间必须大于0")
	}
	return nil
}
