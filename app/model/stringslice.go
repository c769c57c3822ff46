package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice 以 JSON 文本形式存储字符串数组的自定义 GORM 类型。
// 编码/解码对任意 UTF-8 内容无损往返。
type StringSlice []string

// Value 实现 driver.Valuer 接口
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		// nil 切片存为空 JSON 数组
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner 接口
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringSlice Scan: 不支持的类型 %T", value)
	}

	if len(raw) == 0 || string(raw) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(raw, s)
}
