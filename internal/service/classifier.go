package service

// Category 严重程度分级
type Category string

const (
	CategoryLowRisk  Category = "Low Risk"
	CategoryMild     Category = "Mild Addiction"
	CategoryModerate Category = "Moderate Addiction"
	CategorySevere   Category = "Severe Addiction"
)

// Label 二分类结果，与 Category 的阈值相互独立
type Label string

const (
	LabelAddicted    Label = "Addicted"
	LabelNotAddicted Label = "Not Addicted"
)

// 阈值为闭区间下界，自上而下匹配
const (
	SevereThreshold   = 75.0
	ModerateThreshold = 50.0
	MildThreshold     = 25.0
	AddictedThreshold = 50.0
)

type stageDetails struct {
	symptoms []string
	tips     []string
}

var stages = map[Category]stageDetails{
	CategorySevere: {
		symptoms: []string{
			"Constant urge to check phone (every few minutes)",
			"Neglecting important tasks, relationships or responsibilities",
			"Significant sleep disturbance (staying up late, waking at night)",
			"Using phone to escape emotions or relieve negative moods",
			"Physical symptoms: eye strain, headaches, neck/shoulder pain",
			"Marked anxiety or irritability when phone is unavailable",
		},
		tips: []string{
			"Set strict daily screen-time limits (use OS tools or third-party apps)",
			"Create phone-free zones (bedroom, dining table, study area)",
			"Turn off all non-essential notifications and put phone on Do Not Disturb",
			"Charge the phone outside the bedroom overnight",
			"Use grayscale/gray mode and remove addictive apps from home screen",
			"Replace heavy phone use with structured activities (exercise, social time)",
			"Consider professional support (counselor/therapist) if affecting life",
		},
	},
	CategoryModerate: {
		symptoms: []string{
			"Frequent checking (every 10–20 minutes)",
			"Losing track of time while using apps",
			"Feeling irritated or restless without the phone",
			"Sometimes choosing phone over face-to-face interaction",
			"Occasional late-night scrolling affecting sleep",
		},
		tips: []string{
			"Set app timers for social apps (limit to 1–2 sessions/day)",
			"Put phone on charge outside the bedroom at night",
			"Use focus techniques (Pomodoro: 25–50 min focus, 5–10 min break)",
			"Disable the most distracting lock-screen notifications",
			"Use apps like Forest or built-in Screen Time to block usage",
			"Replace short boredom-checks with quick walks, stretching or a drink",
		},
	},
	CategoryMild: {
		symptoms: []string{
			"Occasional overuse (phone as a quick distraction)",
			"Unlocking phone without specific purpose",
			"Short periods of scrolling before sleep (10–20 minutes)",
			"Mild FOMO (fear of missing out) or routine checking",
		},
		tips: []string{
			"Turn off non-essential notifications and lock-screen previews",
			"Schedule brief phone checks (e.g., 3 set times/day)",
			"Follow a 15–30 minute 'no-phone' rule before bed",
			"Use Do Not Disturb during focused work/study sessions",
			"Keep phone out of reach during short tasks so you don't autopilot-unlock",
			"Try a short digital detox (a single evening or weekend) to reset habits",
		},
	},
	CategoryLowRisk: {
		symptoms: []string{
			"Generally healthy phone usage habits",
			"Phone does not significantly interrupt daily life or sleep",
			"Occasional use for convenience or information",
		},
		tips: []string{
			"Maintain current healthy habits",
			"Take periodic screen breaks (20–20–20 rule for eyes)",
			"Keep using screen-time tools to monitor usage",
			"Reflect if any new app starts to creep usage up and adjust limits",
		},
	},
}

// CategoryFor 仅返回分级
func CategoryFor(percentage float64) Category {
	switch {
	case percentage >= SevereThreshold:
		return CategorySevere
	case percentage >= ModerateThreshold:
		return CategoryModerate
	case percentage >= MildThreshold:
		return CategoryMild
	default:
		return CategoryLowRisk
	}
}

// Classify 返回分级以及对应的症状与建议（每次返回新切片）
func Classify(percentage float64) (Category, []string, []string) {
	category := CategoryFor(percentage)
	details := stages[category]
	return category, append([]string(nil), details.symptoms...), append([]string(nil), details.tips...)
}

// PredictLabel 独立于分级阈值：>=50 判定为 Addicted，100 与 0 为固定结果。
// 因此恰好 50% 时既是 "Addicted" 又是 "Moderate Addiction"。
func PredictLabel(percentage float64) Label {
	label := LabelNotAddicted
	if percentage >= AddictedThreshold {
		label = LabelAddicted
	}
	if percentage == 100 {
		label = LabelAddicted
	}
	if percentage == 0 {
		label = LabelNotAddicted
	}
	return label
}

// CategoryThreshold 供 /about 展示的分级下界
type CategoryThreshold struct {
	Category Category `json:"category"`
	Min      float64  `json:"min"`
}

func CategoryThresholds() []CategoryThreshold {
	return []CategoryThreshold{
		{Category: CategorySevere, Min: SevereThreshold},
		{Category: CategoryModerate, Min: ModerateThreshold},
		{Category: CategoryMild, Min: MildThreshold},
		{Category: CategoryLowRisk, Min: 0},
	}
}
