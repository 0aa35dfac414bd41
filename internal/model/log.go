package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Log 一次问卷提交记录，写入后不再修改。
// category、age、weighted_total 是后加的列，旧数据可能为 NULL。
type Log struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint     `gorm:"index" json:"userId"`
	Inputs        string   `gorm:"type:text" json:"-"`
	Prediction    string   `gorm:"type:text" json:"prediction"`
	Category      *string  `gorm:"type:text" json:"category"`
	Age           *string  `gorm:"type:text" json:"age"`
	WeightedTotal *float64 `json:"weightedTotal"`
	Timestamp     string   `gorm:"type:text" json:"timestamp"`
}

func (Log) TableName() string {
	return "logs"
}

// LogOptionalColumns 需要在已有 logs 表上自动补齐的列（字段名）
var LogOptionalColumns = []string{"Category", "Age", "WeightedTotal"}

var (
	ErrAnswersNotArray = errors.New("stored answers are not an array")
	ErrAnswersLength   = errors.New("stored answers have wrong length")
	ErrAnswerValue     = errors.New("stored answer is not an integer")
)

// EncodeAnswers 序列化为 JSON 数组，例如 [1,0,0,...]
func EncodeAnswers(a AnswerSet) string {
	b, _ := json.Marshal(a)
	return string(b)
}

// DecodeAnswers 解析存储的答案。旧版服务写入的 "[1, 0, ...]" 同样是合法 JSON。
// 总是返回可用的 AnswerSet：整体无法解析时全部为 0，单个元素无效或缺失时该题为 0；
// error 描述遇到的第一个问题，供调用方记录。
func DecodeAnswers(raw string) (AnswerSet, error) {
	var out AnswerSet

	var items []interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return AnswerSet{}, fmt.Errorf("%w: %v", ErrAnswersNotArray, err)
	}

	var firstErr error
	for i := 0; i < QuestionCount && i < len(items); i++ {
		v, ok := answerValue(items[i])
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: index %d", ErrAnswerValue, i)
			}
			continue
		}
		if v == 1 {
			out[i] = 1
		}
	}

	if firstErr == nil && len(items) != QuestionCount {
		firstErr = fmt.Errorf("%w: got %d, want %d", ErrAnswersLength, len(items), QuestionCount)
	}
	return out, firstErr
}

func answerValue(item interface{}) (int, bool) {
	switch v := item.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
