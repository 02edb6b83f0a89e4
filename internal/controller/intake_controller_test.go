package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hotacreatives/intake-backend/internal/controller"
	"github.com/hotacreatives/intake-backend/internal/model"
	"github.com/hotacreatives/intake-backend/internal/service"
)

// --- Mocks ---

type MockSheetRepo struct {
	rows          map[string][][]string
	headerWritten map[string]bool
}

func NewMockSheetRepo() *MockSheetRepo {
	return &MockSheetRepo{rows: map[string][][]string{}, headerWritten: map[string]bool{}}
}

func (m *MockSheetRepo) EnsureSheet(name string, header []string) error {
	if !m.headerWritten[name] {
		m.headerWritten[name] = true
		m.rows[name] = append(m.rows[name], header)
	}
	return nil
}

func (m *MockSheetRepo) AppendRow(name string, cells []string) error {
	m.rows[name] = append(m.rows[name], cells)
	return nil
}

func (m *MockSheetRepo) ListRows(name string) ([][]string, error) { return m.rows[name], nil }
func (m *MockSheetRepo) CountRows(name string) (int, error)       { return len(m.rows[name]), nil }

type MockFileStore struct{}

func (m *MockFileStore) CreateFolder(name string) (string, error) {
	return "https://files.local/" + name + "/", nil
}

func (m *MockFileStore) SaveFile(folder, name, mimeType string, content []byte) (string, error) {
	return "https://files.local/" + folder + "/" + name, nil
}

type MockMailer struct {
	sent []model.EmailMessage
}

func (m *MockMailer) Send(msg model.EmailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newController(repo *MockSheetRepo, mail *MockMailer) *controller.IntakeController {
	return &controller.IntakeController{
		IntakeService: &service.IntakeService{
			Sheets:         repo,
			Files:          &MockFileStore{},
			Mailer:         mail,
			AdminEmail:     "hello@hota.agency",
			WhatsAppNumber: "919542421108",
		},
	}
}

// --- Tests ---

func TestHealthIsIdempotent(t *testing.T) {
	ctrl := newController(NewMockSheetRepo(), &MockMailer{})

	var first string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		ctrl.Health(w, req)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		raw := w.Body.String()
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !body.Success {
			t.Error("expected success true")
		}
		if !strings.Contains(body.Message, "API is live") {
			t.Errorf("unexpected liveness message %q", body.Message)
		}
		if i == 0 {
			first = raw
		} else if raw != first {
			t.Errorf("liveness response changed between calls: %q vs %q", first, raw)
		}
	}
}

func TestMalformedBodyHasNoSideEffects(t *testing.T) {
	repo := NewMockSheetRepo()
	mail := &MockMailer{}
	ctrl := newController(repo, mail)

	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("expected success false")
	}
	if body.Message != controller.MsgServerError {
		t.Errorf("expected %q, got %q", controller.MsgServerError, body.Message)
	}
	if len(repo.rows) != 0 {
		t.Errorf("expected no rows written, got %v", repo.rows)
	}
	if len(mail.sent) != 0 {
		t.Errorf("expected no emails sent, got %d", len(mail.sent))
	}
}

func TestUnknownFormTypeHasNoSideEffects(t *testing.T) {
	repo := NewMockSheetRepo()
	mail := &MockMailer{}
	ctrl := newController(repo, mail)

	b, _ := json.Marshal(map[string]string{"formType": "newsletter", "email": "a@x.com"})
	req := httptest.NewRequest("POST", "/", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("expected success false")
	}
	if body.Message != controller.MsgInvalidFormType {
		t.Errorf("expected %q, got %q", controller.MsgInvalidFormType, body.Message)
	}
	if len(repo.rows) != 0 || len(mail.sent) != 0 {
		t.Error("expected no side effects for unknown form type")
	}
}

func TestContactDispatchHappyPath(t *testing.T) {
	repo := NewMockSheetRepo()
	mail := &MockMailer{}
	ctrl := newController(repo, mail)

	payload := map[string]string{
		"formType": "contact",
		"name":     "Asha",
		"email":    "asha@x.com",
		"phone":    "9998887777",
		"company":  "Acme",
		"service":  "branding",
		"budget":   "₹1L",
		"message":  "Hi",
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	if body["message"] != controller.MsgContactSubmitted {
		t.Errorf("unexpected message %v", body["message"])
	}
	// Contact variant always carries a data object.
	if _, ok := body["data"]; !ok {
		t.Error("expected data object in contact envelope")
	}

	rows := repo.rows[service.ContactSheet]
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if len(mail.sent) != 2 {
		t.Errorf("expected 2 emails, got %d", len(mail.sent))
	}
}

func TestAuditDispatchHappyPath(t *testing.T) {
	repo := NewMockSheetRepo()
	mail := &MockMailer{}
	ctrl := newController(repo, mail)

	b, _ := json.Marshal(map[string]any{
		"formType":     "audit",
		"name":         "Test User",
		"businessName": "TestBrand",
		"industry":     "Fashion",
		"email":        "test@example.com",
	})
	req := httptest.NewRequest("POST", "/", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.Submit(w, req)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success, got %v", body.Message)
	}
	if body.Message != controller.MsgAuditSubmitted {
		t.Errorf("unexpected message %q", body.Message)
	}
	if len(repo.rows[service.AuditSheet]) != 2 {
		t.Errorf("expected header + 1 row, got %d", len(repo.rows[service.AuditSheet]))
	}
}

func TestResponseContentType(t *testing.T) {
	ctrl := newController(NewMockSheetRepo(), &MockMailer{})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	ctrl.Health(w, req)

	got := w.Result().Header.Get("Content-Type")
	if got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
}
