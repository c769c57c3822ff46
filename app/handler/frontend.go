package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// fallbackPage 前端未打包时的提示页
const fallbackPage = `<h1>408刷题系统后端已启动</h1>
<p>前端页面未打包，请先运行：npm run build（前端项目中）</p>
<p>接口测试地址：<a href="/api/questions">/api/questions</a></p>
<p>管理员登录接口：POST /api/admin/login</p>`

// FrontendHandler 托管前端打包产物并兼容前端路由
type FrontendHandler struct {
	distPath string
}

// NewFrontendHandler 创建前端托管处理器
func NewFrontendHandler(distPath string) *FrontendHandler {
	return &FrontendHandler{distPath: distPath}
}

// ServeFallback 处理所有未匹配的路由：
// /api 下的未知接口返回 JSON 404，其余路径返回前端入口页，
// 入口页不存在时返回提示页。
func (h *FrontendHandler) ServeFallback(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api") {
		fail(c, http.StatusNotFound, "接口不存在")
		return
	}

	// 优先尝试 dist 下的静态文件（js/css/图片等）
	if path != "/" {
		file := filepath.Join(h.distPath, filepath.Clean(path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
	}

	// 前端路由兼容：非 /api 请求统一返回 index.html
	index := filepath.Join(h.distPath, "index.html")
	if _, err := os.Stat(index); err == nil {
		c.File(index)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackPage))
}
