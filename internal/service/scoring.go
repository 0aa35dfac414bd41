package service

import (
	"math"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/util"
)

// Scorer 按固定权重计算加权总分和百分比，无副作用
type Scorer struct {
	weights [model.QuestionCount]int
	max     int
}

func NewScorer(weights [model.QuestionCount]int) *Scorer {
	return &Scorer{weights: weights, max: model.SumWeights(weights)}
}

func DefaultScorer() *Scorer {
	return NewScorer(model.DefaultWeights)
}

func (s *Scorer) MaxPossible() int {
	return s.max
}

func (s *Scorer) Weights() [model.QuestionCount]int {
	return s.weights
}

// Score 只有值为 1 的答案计入权重；百分比保留两位小数
func (s *Scorer) Score(answers model.AnswerSet) (int, float64, error) {
	if s.max == 0 {
		return 0, 0, util.ErrDivisionUndefined
	}

	total := 0
	for i, a := range answers {
		if a == 1 {
			total += s.weights[i]
		}
	}

	percentage := round2(float64(total) / float64(s.max) * 100)
	return total, percentage, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
