package model

// Admin 管理员模型，仅通过启动时的默认账号初始化写入
type Admin struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
