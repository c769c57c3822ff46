package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"exam-bank/app/auth"
	"exam-bank/app/logger"
	"exam-bank/app/model"
	"exam-bank/app/repository"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员模块处理器
type AdminHandler struct {
	admins     *repository.AdminRepository
	users      *repository.UserRepository
	questions  *repository.QuestionRepository
	jwtService *auth.JWTService
	log        *logger.Logger
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(
	admins *repository.AdminRepository,
	users *repository.UserRepository,
	questions *repository.QuestionRepository,
	jwtService *auth.JWTService,
	log *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		admins:     admins,
		users:      users,
		questions:  questions,
		jwtService: jwtService,
		log:        log,
	}
}

// Login 管理员登录，成功后签发2小时有效期的Token
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	admin, err := h.admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "管理员账号或密码错误")
			return
		}
		h.log.Errorf("管理员登录失败: %v", err)
		fail(c, http.StatusInternalServerError, "登录失败："+err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(admin.Username)
	if err != nil {
		h.log.Errorf("生成令牌失败: %v", err)
		fail(c, http.StatusInternalServerError, "生成令牌失败")
		return
	}

	success(c, gin.H{
		"message":  "管理员登录成功",
		"username": admin.Username,
		"token":    token,
	})
}

// BatchImport 批量导入题目，逐项独立插入并统计成败数量
func (h *AdminHandler) BatchImport(c *gin.Context) {
	var questions []model.Question
	if err := c.ShouldBindJSON(&questions); err != nil || len(questions) == 0 {
		fail(c, http.StatusBadRequest, "请提供有效的题目数组")
		return
	}

	result := h.questions.CreateBatch(c.Request.Context(), questions)

	success(c, gin.H{
		"message":      fmt.Sprintf("批量导入完成：成功%d题，失败%d题", result.SuccessCount, result.FailCount),
		"successCount": result.SuccessCount,
		"failCount":    result.FailCount,
	})
}

// ListUsers 获取所有用户列表
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.log.Errorf("获取用户列表失败: %v", err)
		fail(c, http.StatusInternalServerError, "获取用户列表失败："+err.Error())
		return
	}

	success(c, gin.H{"data": users})
}

// DeleteUser 删除用户，ID 不存在也返回成功
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "无效的ID")
		return
	}

	if err := h.users.Delete(c.Request.Context(), uint(id)); err != nil {
		h.log.Errorf("删除用户失败: %v", err)
		fail(c, http.StatusInternalServerError, "删除用户失败："+err.Error())
		return
	}

	success(c, gin.H{"message": "用户删除成功"})
}
