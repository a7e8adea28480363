package domain

import "slices"

type ScheduleKey string

const (
	ScheduleMorning   ScheduleKey = "morning"
	ScheduleAfternoon ScheduleKey = "afternoon"
	ScheduleEvening   ScheduleKey = "evening"
)

// ScheduleKeys lists the slots in display order.
var ScheduleKeys = []ScheduleKey{ScheduleMorning, ScheduleAfternoon, ScheduleEvening}

func (k ScheduleKey) Valid() bool {
	return slices.Contains(ScheduleKeys, k)
}

type Level string

const (
	LevelBeginner     Level = "Principiante"
	LevelIntermediate Level = "Intermedio"
	LevelAdvanced     Level = "Avanzado"
)

type PaymentPlan struct {
	Type         string `json:"type"                   yaml:"type"         validate:"required"`
	Price        string `json:"price"                  yaml:"price"        validate:"required"`
	Discount     string `json:"discount,omitempty"     yaml:"discount"`
	Installments int    `json:"installments,omitempty" yaml:"installments" validate:"gte=0"`
	Description  string `json:"description,omitempty"  yaml:"description"`
}

type Location struct {
	Type    string `json:"type"              yaml:"type"    validate:"required,oneof=Online Presencial Híbrido"`
	Address string `json:"address,omitempty" yaml:"address"`
	City    string `json:"city,omitempty"    yaml:"city"`
	Country string `json:"country,omitempty" yaml:"country"`
}

type Bootcamp struct {
	ID                int                    `json:"id"                 yaml:"id"                 validate:"required,gt=0"`
	Name              string                 `json:"name"               yaml:"name"               validate:"required"`
	Description       string                 `json:"description"        yaml:"description"        validate:"required"`
	Duration          string                 `json:"duration"           yaml:"duration"           validate:"required"`
	Price             string                 `json:"price"              yaml:"price"              validate:"required"`
	Instructor        string                 `json:"instructor"         yaml:"instructor"         validate:"required"`
	Level             Level                  `json:"level"              yaml:"level"              validate:"required,oneof=Principiante Intermedio Avanzado"`
	Language          string                 `json:"language"           yaml:"language"           validate:"required"`
	Schedule          map[ScheduleKey]string `json:"schedule"           yaml:"schedule"           validate:"required,min=1,dive,keys,oneof=morning afternoon evening,endkeys,required"`
	StartDates        []string               `json:"start_dates"        yaml:"start_dates"        validate:"required,min=1,dive,datetime=2006-01-02"`
	PaymentPlans      []PaymentPlan          `json:"payment_plans"      yaml:"payment_plans"      validate:"required,min=1,dive"`
	Skills            []string               `json:"skills"             yaml:"skills"`
	Requirements      []string               `json:"requirements"       yaml:"requirements"`
	MaxStudents       int                    `json:"max_students"       yaml:"max_students"       validate:"gte=0"`
	CertificationType string                 `json:"certification_type" yaml:"certification_type"`
	Location          *Location              `json:"location,omitempty" yaml:"location"           validate:"omitempty"`
}

// ScheduleOptions returns the bootcamp slots in display order.
func (b *Bootcamp) ScheduleOptions() []ScheduleKey {
	keys := make([]ScheduleKey, 0, len(b.Schedule))
	for _, k := range ScheduleKeys {
		if _, ok := b.Schedule[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func (b *Bootcamp) PaymentPlan(planType string) (PaymentPlan, bool) {
	for _, p := range b.PaymentPlans {
		if p.Type == planType {
			return p, true
		}
	}
	return PaymentPlan{}, false
}

// NextStartDate is the first configured start date.
func (b *Bootcamp) NextStartDate() string {
	if len(b.StartDates) == 0 {
		return ""
	}
	return b.StartDates[0]
}
