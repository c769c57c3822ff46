package repository

import "errors"

// 仓库层错误，由 API 层翻译为对应的 HTTP 状态
var (
	// ErrUsernameTaken 表示注册的用户名违反了唯一约束
	ErrUsernameTaken = errors.New("repository: username already taken")
	// ErrInvalidCredentials 表示用户名不存在或密码错误，
	// 二者统一返回同一个错误，避免泄露用户名是否存在
	ErrInvalidCredentials = errors.New("repository: invalid credentials")
)
