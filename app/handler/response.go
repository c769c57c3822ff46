package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// success 创建成功响应，payload 中的字段平铺在 success 旁边
func success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// fail 创建错误响应
func fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
