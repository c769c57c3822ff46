package handler

import (
	"errors"
	"net/http"

	"exam-bank/app/logger"
	"exam-bank/app/repository"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户模块处理器
type UserHandler struct {
	users *repository.UserRepository
	log   *logger.Logger
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users *repository.UserRepository, log *logger.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// RegisterRequest 注册请求结构
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	QQ       string `json:"qq"`
}

// LoginRequest 登录请求结构
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "用户名和密码不能为空")
		return
	}

	// 基础参数校验
	if req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "用户名和密码不能为空")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Phone, req.QQ)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			fail(c, http.StatusBadRequest, "用户名已被注册")
			return
		}
		h.log.Errorf("用户注册失败: %v", err)
		fail(c, http.StatusInternalServerError, "注册失败："+err.Error())
		return
	}

	success(c, gin.H{
		"message": "注册成功",
		"id":      user.ID,
	})
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// 用户名不存在和密码错误统一返回同一条消息
		if errors.Is(err, repository.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "用户名或密码错误")
			return
		}
		h.log.Errorf("用户登录失败: %v", err)
		fail(c, http.StatusInternalServerError, "登录失败："+err.Error())
		return
	}

	// 密码字段由模型的 json:"-" 隐藏
	success(c, gin.H{
		"message":  "登录成功",
		"userInfo": user,
	})
}
