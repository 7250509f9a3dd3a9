package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// StudyPlanSession is one half-day slot of the weekly plan.
type StudyPlanSession struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Activity string `json:"activity"`
}

// StudyDayItem holds the two nullable slots of one day.
type StudyDayItem struct {
	DayOfWeek string            `json:"dayOfWeek"`
	Morning   *StudyPlanSession `json:"morning"`
	Evening   *StudyPlanSession `json:"evening"`
}

// WeeklyPlan always holds exactly seven days once normalized.
type WeeklyPlan []StudyDayItem

// WeeklyPlanRecord is the single persisted row carrying the current plan.
type WeeklyPlanRecord struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Days      datatypes.JSON `json:"days" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r *WeeklyPlanRecord) SetPlan(plan WeeklyPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	r.Days = datatypes.JSON(b)
	return nil
}

func (r *WeeklyPlanRecord) GetPlan() (WeeklyPlan, error) {
	var plan WeeklyPlan
	if len(r.Days) == 0 {
		return plan, nil
	}
	err := json.Unmarshal(r.Days, &plan)
	return plan, err
}

// PlanPracticeRequest is handed to the practice flow when the student starts
// an exercise straight from a plan slot.
type PlanPracticeRequest struct {
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	NumMcq       int    `json:"numMcq"`
	NumOpenEnded int    `json:"numOpenEnded"`
}
