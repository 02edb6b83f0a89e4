package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hotacreatives/intake-backend/internal/controller"
	"github.com/hotacreatives/intake-backend/internal/handler"
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

type MockFileStore struct {
	saved []string
}

func (m *MockFileStore) CreateFolder(name string) (string, error) {
	return "https://files.local/" + name + "/", nil
}

func (m *MockFileStore) SaveFile(folder, name, mimeType string, content []byte) (string, error) {
	m.saved = append(m.saved, name)
	return "https://files.local/" + folder + "/" + name, nil
}

type MockMailer struct {
	sent []model.EmailMessage
}

func (m *MockMailer) Send(msg model.EmailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newHandler(repo *MockSheetRepo, files *MockFileStore, mail *MockMailer) *handler.IntakeHandler {
	return &handler.IntakeHandler{
		Service: &service.IntakeService{
			Sheets:         repo,
			Files:          files,
			Mailer:         mail,
			AdminEmail:     "hello@hota.agency",
			WhatsAppNumber: "919542421108",
		},
	}
}

// --- Tests ---

func TestAuditHealthMessage(t *testing.T) {
	h := newHandler(NewMockSheetRepo(), &MockFileStore{}, &MockMailer{})

	w := httptest.NewRecorder()
	h.AuditHealth(w, httptest.NewRequest("GET", "/audit", nil))

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success || body.Message != "HOTA Free Audit API is live." {
		t.Errorf("unexpected liveness envelope: %+v", body)
	}
}

func TestHardBoundAuditEndpointWithFile(t *testing.T) {
	repo := NewMockSheetRepo()
	files := &MockFileStore{}
	mail := &MockMailer{}
	h := newHandler(repo, files, mail)

	payload := map[string]any{
		"name":         "Test User",
		"businessName": "TestBrand",
		"industry":     "Fashion",
		"email":        "test@example.com",
		"files": []map[string]string{
			{
				"name":     "logo.png",
				"mimeType": "image/png",
				"base64":   base64.StdEncoding.EncodeToString([]byte("img")),
			},
		},
	}
	b, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	h.HandleAudit(w, httptest.NewRequest("POST", "/audit", bytes.NewReader(b)))

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success, got %q", body.Message)
	}
	if body.Message != controller.MsgAuditSubmitted {
		t.Errorf("unexpected message %q", body.Message)
	}

	if len(files.saved) != 1 || files.saved[0] != "logo.png" {
		t.Errorf("expected logo.png stored, got %v", files.saved)
	}
	rows := repo.rows[service.AuditSheet]
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	row := rows[1]
	if row[len(row)-2] != "1" {
		t.Errorf("expected file count 1, got %q", row[len(row)-2])
	}
	if len(mail.sent) != 2 {
		t.Errorf("expected 2 emails, got %d", len(mail.sent))
	}
}

func TestHardBoundContactEndpointRejectsBadJSON(t *testing.T) {
	repo := NewMockSheetRepo()
	mail := &MockMailer{}
	h := newHandler(repo, &MockFileStore{}, mail)

	w := httptest.NewRecorder()
	h.HandleContact(w, httptest.NewRequest("POST", "/contact", strings.NewReader("nope")))

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("expected failure envelope")
	}
	if body.Message != controller.MsgServerError {
		t.Errorf("expected %q, got %q", controller.MsgServerError, body.Message)
	}
	if len(repo.rows) != 0 || len(mail.sent) != 0 {
		t.Error("expected no side effects for malformed body")
	}
}
