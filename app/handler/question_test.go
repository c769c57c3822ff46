package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListQuestion(t *testing.T) {
	env := newTestEnv(t)

	payload := validQuestion("OS", 2020)
	payload["options"] = []string{"A. 含\"引号\"", "B. 中文选项", "C. 😀", "D. 换行\n选项"}

	w, body := env.do(t, http.MethodPost, "/api/questions", payload, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotZero(t, body["id"])

	w, body = env.do(t, http.MethodGet, "/api/questions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	q := data[0].(map[string]any)
	// options 往返无损
	assert.Equal(t, []any{"A. 含\"引号\"", "B. 中文选项", "C. 😀", "D. 换行\n选项"}, q["options"])
	// 未指定类型时默认真题
	assert.Equal(t, "真题", q["type"])
}

func TestCreateQuestionIgnoresClientID(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/questions", validQuestion("OS", 2020), "")
	require.Equal(t, http.StatusOK, w.Code)
	existingID := body["id"].(float64)

	// 请求体带已存在的 id 也正常新增，不触发唯一约束 500
	payload := validQuestion("OS", 2021)
	payload["id"] = existingID
	w, body = env.do(t, http.MethodPost, "/api/questions", payload, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEqual(t, existingID, body["id"])

	w, body = env.do(t, http.MethodGet, "/api/questions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 2)
}

func TestCreateQuestionMissingFields(t *testing.T) {
	env := newTestEnv(t)

	incomplete := []gin.H{
		{"subject": "OS", "question": "q", "options": []string{"A"}, "answer": "A"},
		{"year": 2020, "question": "q", "options": []string{"A"}, "answer": "A"},
		{"year": 2020, "subject": "OS", "options": []string{"A"}, "answer": "A"},
		{"year": 2020, "subject": "OS", "question": "q", "answer": "A"},
		{"year": 2020, "subject": "OS", "question": "q", "options": []string{"A"}},
	}

	for _, payload := range incomplete {
		w, body := env.do(t, http.MethodPost, "/api/questions", payload, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "题目信息不完整：年份、科目、题干、选项、答案为必填项", body["error"])
	}
}

func TestListQuestionsFiltered(t *testing.T) {
	env := newTestEnv(t)

	for _, payload := range []gin.H{
		validQuestion("OS", 2020),
		validQuestion("OS", 2021),
		validQuestion("计算机网络", 2020),
		validQuestion("OS", 2020),
	} {
		w, _ := env.do(t, http.MethodPost, "/api/questions", payload, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := env.do(t, http.MethodGet, "/api/questions?subject=OS&year=2020", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].([]any)
	require.Len(t, data, 2)

	var prevID float64
	for i, item := range data {
		q := item.(map[string]any)
		assert.Equal(t, "OS", q["subject"])
		assert.Equal(t, float64(2020), q["year"])
		// 按 ID 倒序
		if i > 0 {
			assert.Less(t, q["id"].(float64), prevID)
		}
		prevID = q["id"].(float64)
	}
}

func TestListQuestionsNoFilter(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/api/questions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	// 空库返回空数组而不是 null
	data, ok := body["data"].([]any)
	assert.True(t, ok)
	assert.Empty(t, data)
}

func TestDeleteQuestion(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/questions", validQuestion("OS", 2020), "")
	require.Equal(t, http.StatusOK, w.Code)
	id := int(body["id"].(float64))

	w, body = env.do(t, http.MethodDelete, "/api/questions/"+strconv.Itoa(id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	// 删除不存在的 ID 同样成功
	w, body = env.do(t, http.MethodDelete, "/api/questions/"+strconv.Itoa(id), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestDeleteQuestionInvalidID(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodDelete, "/api/questions/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "无效的ID", body["error"])
}
