package model

// QuestionCount 问卷题目数量，题目顺序与权重、存储的答案顺序一一对应
const QuestionCount = 18

// AnswerSet 按题目顺序保存的 0/1 答案
type AnswerSet [QuestionCount]int

// Yes 第 i 题是否回答"是"
func (a AnswerSet) Yes(i int) bool {
	return a[i] == 1
}

// Questions 问卷题目，进程启动时固定
var Questions = [QuestionCount]string{
	"Do you use your phone to click pictures of class notes?",
	"Do you buy books/access books from your mobile?",
	"Does your phone's battery last a day?",
	"When your phone's battery dies out, do you run for the charger?",
	"Do you worry about losing your cell phone?",
	"Do you take your phone to the bathroom?",
	"Do you check your phone immediately after waking up?",
	"Do you use your phone while eating meals?",
	"Do you feel anxious when your phone is not near you?",
	"Do you spend more time on your phone than talking to people?",
	"Do you use your phone before going to sleep?",
	"Do you find it hard to stop using certain apps?",
	"Do you prefer online interactions over face-to-face?",
	"Do you use your phone during classes/lectures?",
	"Do you get irritated when interrupted while using your phone?",
	"Do you use your phone to escape from problems or relieve bad moods?",
	"Do you check social media very frequently?",
	"Do you lose track of time while using your phone?",
}

// DefaultWeights 每题权重，3 为高影响，2 为中等
var DefaultWeights = [QuestionCount]int{
	1, 1, 1, 1, 1, 1,
	3, // check after waking
	1,
	3, // anxious when not near
	2,
	3, // before sleep
	3, // hard to stop certain apps
	2, 2, 2, 2, 2,
	3, // lose track of time
}

// MaxPossibleWeight 全部回答"是"时的加权总分
var MaxPossibleWeight = SumWeights(DefaultWeights)

func SumWeights(weights [QuestionCount]int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}
