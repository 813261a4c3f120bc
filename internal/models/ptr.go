package models

// Помощники для опциональных полей: nil - значение отсутствует.

func Float(v float64) *float64 { return &v }

func FrequencyPtr(f Frequency) *Frequency { return &f }

func StepUpTypePtr(s StepUpType) *StepUpType { return &s }
