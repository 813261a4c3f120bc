package models

// Frequency - периодичность капитализации или взносов
type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

// Valid сообщает, является ли значение известной периодичностью
func (f Frequency) Valid() bool {
	switch f {
	case Monthly, Quarterly, Annually:
		return true
	}
	return false
}

// StepUpType - способ ежегодного увеличения взноса
type StepUpType string

const (
	StepUpFlat       StepUpType = "flat"
	StepUpPercentage StepUpType = "percentage"
)

func (s StepUpType) Valid() bool {
	return s == StepUpFlat || s == StepUpPercentage
}
