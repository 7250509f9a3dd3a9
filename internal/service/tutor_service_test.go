package service

import (
	"context"
	"strings"
	"testing"

	"github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"
	"gorm.io/gorm"
)

type fakeTutorRepo struct {
	sessions []*model.TutorSession
	seq      uint
}

func (r *fakeTutorRepo) Create(session *model.TutorSession) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeTutorRepo) FindByID(id string) (*model.TutorSession, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTutorRepo) FindAll() ([]model.TutorSession, error) {
	out := make([]model.TutorSession, 0, len(r.sessions))
	for i := len(r.sessions) - 1; i >= 0; i-- {
		out = append(out, *r.sessions[i])
	}
	return out, nil
}

func (r *fakeTutorRepo) MostRecent() (*model.TutorSession, error) {
	if len(r.sessions) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r.sessions[len(r.sessions)-1]
	return &copied, nil
}

func (r *fakeTutorRepo) UpdateTitle(id, title string) error {
	for _, s := range r.sessions {
		if s.ID == id {
			s.Title = title
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTutorRepo) Delete(id string) error {
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTutorRepo) AppendMessage(message *model.TutorMessage) error {
	for _, s := range r.sessions {
		if s.ID == message.SessionID {
			r.seq++
			message.ID = r.seq
			s.Messages = append(s.Messages, *message)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTutorRepo) Count() (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakeStateRepo struct {
	state *model.AppState
}

func (r *fakeStateRepo) Get() (*model.AppState, error) { return r.state, nil }

func (r *fakeStateRepo) Save(state *model.AppState) error {
	r.state = state
	return nil
}

// fakeTutorGemini panics on anything the tutor never calls.
type fakeTutorGemini struct {
	GeminiService
	reply     string
	fileCalls int
	textCalls int
}

func (g *fakeTutorGemini) StepByStepSolution(ctx context.Context, grade int, subject, problem string) (string, error) {
	g.textCalls++
	return g.reply, nil
}

func (g *fakeTutorGemini) SolutionFromFile(ctx context.Context, data []byte, mimeType, note string) (string, error) {
	g.fileCalls++
	return g.reply, nil
}

func newTutorFixture(reply string) (TutorService, *fakeTutorRepo, *fakeStateRepo, *fakeTutorGemini) {
	repo := &fakeTutorRepo{}
	state := &fakeStateRepo{}
	gemini := &fakeTutorGemini{reply: reply}
	return NewTutorService(gemini, repo, state), repo, state, gemini
}

func TestTutorFirstMessageSetsTitle(t *testing.T) {
	svc, _, _, gemini := newTutorFixture("Lời giải đây.")
	created, err := svc.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != defaultTutorTitle {
		t.Fatalf("new session title = %q, want %q", created.Title, defaultTutorTitle)
	}

	long := strings.Repeat("a", 50)
	session, err := svc.Send(context.Background(), created.ID, long, nil)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := len([]rune(session.Title)); got != tutorTitleLimit {
		t.Errorf("title length = %d runes, want %d", got, tutorTitleLimit)
	}
	if gemini.textCalls != 1 || gemini.fileCalls != 0 {
		t.Errorf("calls = %d text, %d file, want 1 text only", gemini.textCalls, gemini.fileCalls)
	}

	// Second message must not rename the thread.
	if _, err := svc.Send(context.Background(), created.ID, "một câu hỏi khác", nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	again, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Title != string([]rune(long)[:tutorTitleLimit]) {
		t.Errorf("title changed after second message: %q", again.Title)
	}
}

func TestTutorSendWithAttachmentRoutesToFileSolving(t *testing.T) {
	svc, _, _, gemini := newTutorFixture("OK")
	created, err := svc.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	att := &Attachment{Data: []byte("fake"), MimeType: "image/png", FileName: "bai.png"}
	session, err := svc.Send(context.Background(), created.ID, "giúp em bài này", att)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gemini.fileCalls != 1 || gemini.textCalls != 0 {
		t.Errorf("calls = %d file, %d text, want 1 file only", gemini.fileCalls, gemini.textCalls)
	}
	if len(session.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(session.Messages))
	}
	if session.Messages[0].FileName != "bai.png" {
		t.Errorf("user message file name = %q", session.Messages[0].FileName)
	}
	if session.Messages[1].Role != model.TutorRoleModel || session.Messages[1].HTML == "" {
		t.Errorf("model reply missing rendered HTML: %+v", session.Messages[1])
	}
}

func TestTutorOversizedAttachmentRejected(t *testing.T) {
	svc, _, _, gemini := newTutorFixture("OK")
	created, err := svc.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	att := &Attachment{Data: make([]byte, model.MaxUploadBytes+1), MimeType: "application/pdf"}
	if _, err := svc.Send(context.Background(), created.ID, "", att); err != ErrAttachmentTooLarge {
		t.Fatalf("err = %v, want ErrAttachmentTooLarge", err)
	}
	if gemini.fileCalls != 0 && gemini.textCalls != 0 {
		t.Error("gateway called despite oversized attachment")
	}
}

func TestTutorDeleteFallsBackToMostRecent(t *testing.T) {
	svc, _, state, _ := newTutorFixture("OK")
	first, _ := svc.Create()
	second, _ := svc.Create()

	next, err := svc.Delete(second.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next.ID != first.ID {
		t.Errorf("fallback session = %s, want %s", next.ID, first.ID)
	}
	if state.state.ActiveTutorSessionID != first.ID {
		t.Errorf("active session = %s, want %s", state.state.ActiveTutorSessionID, first.ID)
	}
}

func TestTutorDeleteLastCreatesFresh(t *testing.T) {
	svc, repo, state, _ := newTutorFixture("OK")
	only, _ := svc.Create()

	next, err := svc.Delete(only.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next.ID == only.ID {
		t.Error("expected a fresh session after deleting the last one")
	}
	count, _ := repo.Count()
	if count != 1 {
		t.Errorf("session count = %d, want 1", count)
	}
	if state.state.ActiveTutorSessionID != next.ID {
		t.Errorf("active session = %s, want %s", state.state.ActiveTutorSessionID, next.ID)
	}
}

func TestTutorActiveAutoCreates(t *testing.T) {
	svc, repo, state, _ := newTutorFixture("OK")
	session, err := svc.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	count, _ := repo.Count()
	if count != 1 {
		t.Fatalf("session count = %d, want 1", count)
	}
	if state.state.ActiveTutorSessionID != session.ID {
		t.Errorf("active pointer not persisted")
	}

	// A second call returns the same session instead of creating another.
	again, err := svc.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if again.ID != session.ID {
		t.Errorf("Active returned %s, want %s", again.ID, session.ID)
	}
}
