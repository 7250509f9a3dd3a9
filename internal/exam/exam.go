package exam

import "github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"

// Subjects available to grade-9 students. "Bài tập PDF" and "Bài tập Ảnh" are
// history display tags only and deliberately not part of this list.
const (
	SubjectMath       = "Toán"
	SubjectLiterature = "Ngữ Văn"
	SubjectEnglish    = "Tiếng Anh"
	SubjectScience    = "Khoa học tự nhiên"
)

var Subjects = []string{SubjectMath, SubjectLiterature, SubjectEnglish, SubjectScience}

const (
	PeriodMidterm1 = "midterm1"
	PeriodFinal1   = "final1"
	PeriodMidterm2 = "midterm2"
	PeriodFinal2   = "final2"
)

var Periods = []string{PeriodMidterm1, PeriodFinal1, PeriodMidterm2, PeriodFinal2}

func ValidSubject(s string) bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPeriod(p string) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

type Type string

const (
	TypeMCQ       Type = "mcq"
	TypeOpenEnded Type = "open_ended"
)

// MockExam is a bundled, read-only exam. Type says which question slice is
// populated; the other one is always empty.
type MockExam struct {
	ID        string                    `json:"id"`
	Title     string                    `json:"title"`
	Source    string                    `json:"source"`
	Type      Type                      `json:"type"`
	Questions []model.PracticeQuestion  `json:"questions,omitempty"`
	OpenEnded []model.OpenEndedQuestion `json:"openEnded,omitempty"`
}

// registry: grade -> subject -> period -> exams.
var registry = map[int]map[string]map[string][]MockExam{
	9: {
		SubjectLiterature: {
			PeriodMidterm1: literatureGrade9Midterm1,
			PeriodFinal1:   literatureGrade9Final1,
		},
		SubjectEnglish: {
			PeriodMidterm1: englishGrade9Midterm1,
		},
		SubjectScience: {
			PeriodMidterm1: scienceGrade9Midterm1,
			PeriodFinal1:   scienceGrade9Final1,
			PeriodMidterm2: scienceGrade9Midterm2,
		},
	},
}

var byID = map[string]MockExam{}

func init() {
	for _, subjects := range registry {
		for _, periods := range subjects {
			for _, exams := range periods {
				for _, e := range exams {
					byID[e.ID] = e
				}
			}
		}
	}
}

// Lookup returns the bundled exams for a grade/subject/period combination.
// An empty result is a normal outcome, not an error.
func Lookup(grade int, subject, period string) []MockExam {
	subjects, ok := registry[grade]
	if !ok {
		return nil
	}
	periods, ok := subjects[subject]
	if !ok {
		return nil
	}
	return periods[period]
}

func ByID(id string) (MockExam, bool) {
	e, ok := byID[id]
	return e, ok
}
