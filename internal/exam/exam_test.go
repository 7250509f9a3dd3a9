package exam

import "testing"

func TestLookupEmptyIsNotAnError(t *testing.T) {
	// Math has no bundled exams yet; the student gets an empty list and the
	// upload path instead.
	if exams := Lookup(9, SubjectMath, PeriodMidterm1); len(exams) != 0 {
		t.Errorf("Lookup(math) = %d exams, want 0", len(exams))
	}
	if exams := Lookup(8, SubjectEnglish, PeriodMidterm1); len(exams) != 0 {
		t.Errorf("Lookup(grade 8) = %d exams, want 0", len(exams))
	}
	if exams := Lookup(9, SubjectEnglish, PeriodFinal2); len(exams) != 0 {
		t.Errorf("Lookup(english final2) = %d exams, want 0", len(exams))
	}
}

func TestRegistryConsistency(t *testing.T) {
	for _, subjects := range registry {
		for subject, periods := range subjects {
			if !ValidSubject(subject) {
				t.Errorf("registry subject %q not in Subjects", subject)
			}
			for period, exams := range periods {
				if !ValidPeriod(period) {
					t.Errorf("registry period %q not in Periods", period)
				}
				for _, e := range exams {
					got, ok := ByID(e.ID)
					if !ok || got.ID != e.ID {
						t.Errorf("exam %s not resolvable via ByID", e.ID)
					}
					switch e.Type {
					case TypeMCQ:
						if len(e.Questions) == 0 || len(e.OpenEnded) != 0 {
							t.Errorf("mcq exam %s has %d questions, %d open-ended", e.ID, len(e.Questions), len(e.OpenEnded))
						}
					case TypeOpenEnded:
						if len(e.OpenEnded) == 0 || len(e.Questions) != 0 {
							t.Errorf("open-ended exam %s has %d questions, %d open-ended", e.ID, len(e.Questions), len(e.OpenEnded))
						}
					default:
						t.Errorf("exam %s has unknown type %q", e.ID, e.Type)
					}
				}
			}
		}
	}
}

func TestBundledMCQsAreWellFormed(t *testing.T) {
	for id, e := range byID {
		if e.Type != TypeMCQ {
			continue
		}
		for i, q := range e.Questions {
			if len(q.Options) != 4 {
				t.Errorf("%s question %d has %d options", id, i, len(q.Options))
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s question %d: correct answer %q not among options", id, i, q.CorrectAnswer)
			}
		}
	}
}

func TestEnglishMidtermHas25Questions(t *testing.T) {
	e, ok := ByID("ta9-gk1-de1-mcq")
	if !ok {
		t.Fatal("ta9-gk1-de1-mcq missing")
	}
	if len(e.Questions) != 25 {
		t.Errorf("question count = %d, want 25", len(e.Questions))
	}
}
