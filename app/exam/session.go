// Package exam 维护一次刷题会话的内存状态：题目列表、当前题号、
// 逐题作答与得分。与前端状态仓库的语义保持一致。
package exam

import (
	"sync"

	"exam-bank/app/model"
)

// Session 一次刷题会话
type Session struct {
	mu           sync.Mutex
	questions    []model.Question
	currentIndex int
	answers      map[int]string
	score        int
}

// NewSession 创建空会话
func NewSession() *Session {
	return &Session{
		answers: make(map[int]string),
	}
}

// SetQuestions 替换当前题目列表，不隐式重置其他状态
func (s *Session) SetQuestions(questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = questions
}

// SetAnswer 记录第 index 题的作答。允许稀疏作答，
// 越界的下标同样被记录，计分时自然不会命中任何题目。
func (s *Session) SetAnswer(index int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		return
	}
	s.answers[index] = value
}

// Next 当前题号后移一题，已在最后一题时不动
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	}
}

// Prev 当前题号前移一题，已在第一题时不动
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentIndex > 0 {
		s.currentIndex--
	}
}

// CurrentIndex 返回当前题号
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// CalculateScore 统计作答与标准答案严格相等的题数，记录并返回
func (s *Session) CalculateScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i, q := range s.questions {
		if answer, ok := s.answers[i]; ok && answer == q.Answer {
			count++
		}
	}
	s.score = count
	return count
}

// Score 返回上次计算的得分
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Reset 清空题号、作答和得分，保留题目列表
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentIndex = 0
	s.answers = make(map[int]string)
	s.score = 0
}
