package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"exam-bank/app/auth"
	"exam-bank/app/config"
	"exam-bank/app/database"
	"exam-bank/app/logger"
	"exam-bank/app/middleware"
	"exam-bank/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv 按生产路由表组装的测试环境
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			AdminUsername: "admin",
			AdminPassword: "123456",
			DistPath:      t.TempDir(),
		},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: 2, Issuer: "exam-bank"},
	}
	log := logger.New(config.LogConfig{Level: "error", Output: "stdout"})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.EnsureDefaultAdmin(db, cfg, log))
	t.Cleanup(func() { _ = database.Close(db) })

	jwtService := auth.NewJWTService(cfg)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	userHandler := NewUserHandler(userRepo, log)
	adminHandler := NewAdminHandler(adminRepo, userRepo, questionRepo, jwtService, log)
	questionHandler := NewQuestionHandler(questionRepo, log)
	frontendHandler := NewFrontendHandler(cfg.Server.DistPath)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/user/register", userHandler.Register)
	api.POST("/user/login", userHandler.Login)
	api.POST("/admin/login", adminHandler.Login)

	protected := api.Group("/admin")
	protected.Use(middleware.AdminAuth(jwtService))
	protected.POST("/batch-import", adminHandler.BatchImport)
	protected.GET("/users", adminHandler.ListUsers)
	protected.DELETE("/users/:id", adminHandler.DeleteUser)

	api.GET("/questions", questionHandler.List)
	api.POST("/questions", questionHandler.Create)
	api.DELETE("/questions/:id", questionHandler.Delete)

	router.NoRoute(frontendHandler.ServeFallback)

	return &testEnv{router: router, db: db, jwt: jwtService}
}

// do 发起一个 JSON 请求并解析响应体
func (e *testEnv) do(t *testing.T, method, path string, payload any, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

// adminToken 用默认管理员登录换取令牌
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	w, body := e.do(t, http.MethodPost, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "123456",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// validQuestion 一道字段齐全的题目
func validQuestion(subject string, year int) gin.H {
	return gin.H{
		"year":     year,
		"subject":  subject,
		"question": "TCP三次握手的第二次握手报文携带的标志位是？",
		"options":  []string{"A. SYN", "B. ACK", "C. SYN+ACK", "D. FIN"},
		"answer":   "C. SYN+ACK",
	}
}
