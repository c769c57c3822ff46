package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"exam-bank/app/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// QuestionFilter 题目筛选条件，nil 字段不参与过滤
type QuestionFilter struct {
	Subject *string
	Year    *int
	Type    *string
}

// BatchResult 批量导入的统计结果，SuccessCount+FailCount 等于输入长度
type BatchResult struct {
	SuccessCount int `json:"successCount"`
	FailCount    int `json:"failCount"`
}

// ErrIncompleteQuestion 表示题目缺少必填字段
var ErrIncompleteQuestion = errors.New("repository: incomplete question")

// QuestionRepository 题目表的存取操作
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository 创建题目仓库实例
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List 按条件查询题目，条件之间为 AND 关系，按 ID 倒序返回
func (r *QuestionRepository) List(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	query := r.db.WithContext(ctx).Model(&model.Question{})

	if filter.Subject != nil {
		query = query.Where("subject = ?", *filter.Subject)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	questions := make([]model.Question, 0)
	if err := query.Order("id DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Create 插入单题并回填 ID，未指定类型时默认为真题。
// ID 由数据库自增分配，调用方（包括请求体）携带的 ID 一律忽略。
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	if err := validateQuestion(q); err != nil {
		return err
	}
	q.ID = 0
	if q.Type == "" {
		q.Type = model.DefaultQuestionType
	}
	return r.db.WithContext(ctx).Create(q).Error
}

// CreateBatch 批量导入题目。所有插入并发发起，每一项独立成败，
// 单项失败不影响其余项，全部完成后返回确定的成功/失败计数。
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []model.Question) BatchResult {
	var success, fail int64

	g, ctx := errgroup.WithContext(ctx)
	for i := range questions {
		q := questions[i]
		g.Go(func() error {
			if err := r.Create(ctx, &q); err != nil {
				atomic.AddInt64(&fail, 1)
			} else {
				atomic.AddInt64(&success, 1)
			}
			// 错误已计入统计，不向上传播、不打断其余项
			return nil
		})
	}
	_ = g.Wait()

	return BatchResult{
		SuccessCount: int(atomic.LoadInt64(&success)),
		FailCount:    int(atomic.LoadInt64(&fail)),
	}
}

// Delete 按 ID 删除题目，ID 不存在时视为成功（影响 0 行）
func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

// validateQuestion 校验必填字段：年份、科目、题干、选项、答案
func validateQuestion(q *model.Question) error {
	if q.Year == 0 || q.Subject == "" || q.Content == "" || len(q.Options) == 0 || q.Answer == "" {
		return ErrIncompleteQuestion
	}
	return nil
}
