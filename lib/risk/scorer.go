package risk

type Tier string

const (
	TierLow      Tier = "LOW"
	TierMedium   Tier = "MEDIUM"
	TierHigh     Tier = "HIGH"
	TierCritical Tier = "CRITICAL"
)

var tierHumanName = map[Tier]string{
	TierLow:      "Низкий",
	TierMedium:   "Средний",
	TierHigh:     "Высокий",
	TierCritical: "Критический",
}

func (t Tier) ToHuman() string {
	if human, exist := tierHumanName[t]; exist {
		return human
	}
	return string(t)
}

// Score считает балл риска как произведение вероятности на тяжесть.
// Диапазон аргументов (1-5) проверяет вызывающая сторона.
func Score(probability, severity int) int {
	return probability * severity
}

// GetTier относит балл к категории риска
func GetTier(score int) Tier {
	switch {
	case score >= 15:
		return TierCritical
	case score >= 10:
		return TierHigh
	case score >= 5:
		return TierMedium
	default:
		return TierLow
	}
}
