package service

import (
	"fmt"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/repository"
	"phone_addiction_backend/internal/util"
	"phone_addiction_backend/pkg/logger"
	"phone_addiction_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

type AssessmentService struct {
	Repo   *repository.LogRepository
	Scorer *Scorer
	now    func() time.Time
}

func NewAssessmentService(repo *repository.LogRepository, scorer *Scorer) *AssessmentService {
	return &AssessmentService{Repo: repo, Scorer: scorer, now: time.Now}
}

// Result 一次提交的评估结果，不单独持久化
type Result struct {
	LogID         uint     `json:"logId"`
	WeightedTotal int      `json:"weightedTotal"`
	MaxPossible   int      `json:"maxPossible"`
	Percentage    float64  `json:"percentage"`
	Label         Label    `json:"result"`
	Category      Category `json:"category"`
	Symptoms      []string `json:"symptoms"`
	Tips          []string `json:"tips"`
}

// Evaluate 计算分数、标签与分级，不写库
func (s *AssessmentService) Evaluate(answers model.AnswerSet) (*Result, error) {
	total, percentage, err := s.Scorer.Score(answers)
	if err != nil {
		return nil, err
	}
	category, symptoms, tips := Classify(percentage)
	return &Result{
		WeightedTotal: total,
		MaxPossible:   s.Scorer.MaxPossible(),
		Percentage:    percentage,
		Label:         PredictLabel(percentage),
		Category:      category,
		Symptoms:      symptoms,
		Tips:          tips,
	}, nil
}

// Submit 评估并追加一条记录；存储失败直接返回错误，不丢弃
func (s *AssessmentService) Submit(userID uint, age string, answers model.AnswerSet) (*Result, error) {
	res, err := s.Evaluate(answers)
	if err != nil {
		return nil, err
	}

	category := string(res.Category)
	weighted := float64(res.WeightedTotal)
	entry := &model.Log{
		UserID:        userID,
		Inputs:        model.EncodeAnswers(answers),
		Prediction:    FormatPrediction(res.Label, res.Percentage),
		Category:      &category,
		Age:           &age,
		WeightedTotal: &weighted,
		Timestamp:     s.now().Format(util.LogTimestampFormat),
	}

	id, err := s.Repo.Append(entry)
	if err != nil {
		return nil, fmt.Errorf("append log for user %d: %w", userID, err)
	}
	res.LogID = id

	monitoring.AssessmentsTotal.WithLabelValues(category).Inc()
	return res, nil
}

// FormatPrediction 存储格式，例如 "Addicted (45.45%)"
func FormatPrediction(label Label, percentage float64) string {
	return fmt.Sprintf("%s (%s%%)", label, util.FormatPercent(percentage))
}

type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"` // Yes / No
}

type HistoryEntry struct {
	ID            uint             `json:"id"`
	Answers       []QuestionAnswer `json:"answers"`
	Prediction    string           `json:"prediction"`
	Category      *string          `json:"category"`
	Age           *string          `json:"age"`
	WeightedTotal *float64         `json:"weightedTotal"`
	Timestamp     string           `json:"timestamp"`
	Username      string           `json:"username"`
}

// History 返回用户的全部记录（新的在前），并与题目重新组合。
// 单条记录的答案无法解析时该记录显示为全部 "No"，其余记录不受影响。
func (s *AssessmentService) History(userID uint, username string) ([]HistoryEntry, error) {
	logs, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list logs for user %d: %w", userID, err)
	}

	entries := make([]HistoryEntry, 0, len(logs))
	for _, l := range logs {
		answers, err := model.DecodeAnswers(l.Inputs)
		if err != nil {
			logger.Log.Warn("Stored answers degraded on read",
				zap.Uint("log_id", l.ID),
				zap.Uint("user_id", userID),
				zap.Error(err),
			)
		}

		entries = append(entries, HistoryEntry{
			ID:            l.ID,
			Answers:       joinQuestions(answers),
			Prediction:    l.Prediction,
			Category:      l.Category,
			Age:           l.Age,
			WeightedTotal: l.WeightedTotal,
			Timestamp:     l.Timestamp,
			Username:      username,
		})
	}
	return entries, nil
}

func joinQuestions(answers model.AnswerSet) []QuestionAnswer {
	pairs := make([]QuestionAnswer, model.QuestionCount)
	for i, q := range model.Questions {
		ans := "No"
		if answers.Yes(i) {
			ans = "Yes"
		}
		pairs[i] = QuestionAnswer{Question: q, Answer: ans}
	}
	return pairs
}

type QuestionItem struct {
	Index  int    `json:"index"`
	Name   string `json:"name"` // 表单字段名 q0..q17
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

func (s *AssessmentService) Questionnaire() []QuestionItem {
	weights := s.Scorer.Weights()
	items := make([]QuestionItem, model.QuestionCount)
	for i, q := range model.Questions {
		items[i] = QuestionItem{Index: i, Name: fmt.Sprintf("q%d", i), Text: q, Weight: weights[i]}
	}
	return items
}
