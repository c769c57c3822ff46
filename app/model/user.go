package model

// User 用户模型
type User struct {
	ID           uint   `json:"id" gorm:"primarykey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Password     string `json:"-" gorm:"not null"` // json:"-" 确保密码不会被序列化
	Phone        string `json:"phone"`
	QQ           string `json:"qq"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	Avatar       string `json:"avatar"`
	RegisterTime string `json:"registerTime" gorm:"column:registerTime"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
