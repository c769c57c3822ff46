package model

// DefaultQuestionType 未指定题目类型时的默认值
const DefaultQuestionType = "真题"

// Question 题目模型，支持真题/自定义题区分
type Question struct {
	ID         uint        `json:"id" gorm:"primarykey"`
	Year       int         `json:"year"`
	Subject    string      `json:"subject"`
	Content    string      `json:"question" gorm:"column:question;type:text"`
	Options    StringSlice `json:"options" gorm:"type:text"`
	Answer     string      `json:"answer"`
	Analysis   string      `json:"analysis"`
	Difficulty string      `json:"difficulty"`
	Type       string      `json:"type" gorm:"default:真题"`
}

// TableName 指定表名
func (Question) TableName() string {
	return "questions"
}
