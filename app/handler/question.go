package handler

import (
	"errors"
	"net/http"
	"strconv"

	"exam-bank/app/logger"
	"exam-bank/app/model"
	"exam-bank/app/repository"

	"github.com/gin-gonic/gin"
)

// QuestionHandler 题目模块处理器
type QuestionHandler struct {
	questions *repository.QuestionRepository
	log       *logger.Logger
}

// NewQuestionHandler 创建题目处理器
func NewQuestionHandler(questions *repository.QuestionRepository, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, log: log}
}

// List 获取题目，支持科目/年份/类型多条件筛选
func (h *QuestionHandler) List(c *gin.Context) {
	var filter repository.QuestionFilter

	if subject := c.Query("subject"); subject != "" {
		filter.Subject = &subject
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			fail(c, http.StatusBadRequest, "无效的年份")
			return
		}
		filter.Year = &year
	}
	if qtype := c.Query("type"); qtype != "" {
		filter.Type = &qtype
	}

	questions, err := h.questions.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Errorf("获取题目失败: %v", err)
		fail(c, http.StatusInternalServerError, "获取题目失败："+err.Error())
		return
	}

	success(c, gin.H{"data": questions})
}

// Create 新增单题
func (h *QuestionHandler) Create(c *gin.Context) {
	var q model.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		fail(c, http.StatusBadRequest, "题目信息不完整：年份、科目、题干、选项、答案为必填项")
		return
	}

	if err := h.questions.Create(c.Request.Context(), &q); err != nil {
		if errors.Is(err, repository.ErrIncompleteQuestion) {
			fail(c, http.StatusBadRequest, "题目信息不完整：年份、科目、题干、选项、答案为必填项")
			return
		}
		h.log.Errorf("新增题目失败: %v", err)
		fail(c, http.StatusInternalServerError, "新增题目失败："+err.Error())
		return
	}

	success(c, gin.H{
		"message": "题目新增成功",
		"id":      q.ID,
	})
}

// Delete 删除题目，ID 不存在也返回成功
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "无效的ID")
		return
	}

	if err := h.questions.Delete(c.Request.Context(), uint(id)); err != nil {
		h.log.Errorf("删除题目失败: %v", err)
		fail(c, http.StatusInternalServerError, "删除题目失败："+err.Error())
		return
	}

	success(c, gin.H{"message": "题目删除成功"})
}
