package server

import (
	"context"
	"net/http"

	"exam-bank/app/auth"
	"exam-bank/app/config"
	"exam-bank/app/database"
	"exam-bank/app/handler"
	"exam-bank/app/logger"
	"exam-bank/app/middleware"
	"exam-bank/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server 表示 HTTP 服务器
type Server struct {
	Config *config.Config
	Logger *logger.Logger
	gin    *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New 创建一个新的 Server 实例
func New(cfg *config.Config, log *logger.Logger, db *gorm.DB) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	s := &Server{
		gin: router,
		http: &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: router,
		},
		Config: cfg,
		Logger: log,
		db:     db,
	}

	// 设置路由
	s.setupRoutes()

	return s
}

// Start 启动服务器
func (s *Server) Start() error {
	s.Logger.Infof("在端口 %s 启动服务器", s.http.Addr)
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	// 先排空在途请求，再关闭它们依赖的数据库连接
	err := s.http.Shutdown(ctx)
	if closeErr := database.Close(s.db); closeErr != nil {
		s.Logger.Errorf("关闭数据库连接失败: %v", closeErr)
	}
	return err
}

// setupRoutes 设置API路由
func (s *Server) setupRoutes() {
	jwtService := auth.NewJWTService(s.Config)

	// 创建仓库和处理器实例
	userRepo := repository.NewUserRepository(s.db)
	adminRepo := repository.NewAdminRepository(s.db)
	questionRepo := repository.NewQuestionRepository(s.db)

	userHandler := handler.NewUserHandler(userRepo, s.Logger)
	adminHandler := handler.NewAdminHandler(adminRepo, userRepo, questionRepo, jwtService, s.Logger)
	questionHandler := handler.NewQuestionHandler(questionRepo, s.Logger)
	frontendHandler := handler.NewFrontendHandler(s.Config.Server.DistPath)

	// API路由组
	api := s.gin.Group("/api")

	// 用户模块（不需要鉴权）
	user := api.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
	}

	// 管理员模块
	admin := api.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		// 需要管理员鉴权的路由
		protected := admin.Group("/")
		protected.Use(middleware.AdminAuth(jwtService))
		{
			protected.POST("/batch-import", adminHandler.BatchImport)
			protected.GET("/users", adminHandler.ListUsers)
			protected.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// 题目模块（不需要鉴权）
	questions := api.Group("/questions")
	{
		questions.GET("", questionHandler.List)
		questions.POST("", questionHandler.Create)
		questions.DELETE("/:id", questionHandler.Delete)
	}

	// 前端静态资源托管与路由兼容
	s.gin.NoRoute(frontendHandler.ServeFallback)
}
