// internal/service/intake_service.go
package service

import (
	"encoding/base64"
	"fmt"
	"log"
	"strconv"
	"time"

	appErrors "github.com/hotacreatives/intake-backend/internal/errors"
	"github.com/hotacreatives/intake-backend/internal/mailer"
	"github.com/hotacreatives/intake-backend/internal/model"
	"github.com/hotacreatives/intake-backend/internal/repository"
	"github.com/hotacreatives/intake-backend/internal/storage"
)

const (
	ContactSheet = "Contact_Submissions"
	AuditSheet   = "Audit_Submissions"
)

var contactHeader = []string{
	"Timestamp", "Name", "Email", "Phone", "Company", "Service", "Budget", "Message", "Status",
}

var auditHeader = []string{
	"Timestamp", "Name", "Business Name", "Industry", "Revenue Range", "Website",
	"Instagram", "Facebook", "LinkedIn", "Email", "Phone", "Biggest Challenge",
	"Files Folder Link", "File Count", "Status",
}

// Sheet timestamps, folder names and email copy all use the agency's
// timezone regardless of where the service runs.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

// IntakeService runs one submission through upload → persist → notify.
type IntakeService struct {
	Sheets repository.SheetRepositoryInterface
	Files  storage.FileStoreInterface
	Mailer mailer.Mailer

	AdminEmail     string
	WhatsAppNumber string

	// Now overrides the clock in tests.
	Now func() time.Time
}

// IntakeResult reports what each stage actually did. UploadErrors and
// NotifyErrors are non-fatal: the row is durable either way.
type IntakeResult struct {
	Sheet        string
	FolderURL    string
	FileLinks    []model.FileLink
	UploadErrors []error
	NotifyErrors []error
}

// InitSheets pre-creates both sheets with their headers. Called by the
// seeder at deploy time so per-request EnsureSheet calls find the
// headers already written.
func InitSheets(repo repository.SheetRepositoryInterface) error {
	if err := repo.EnsureSheet(ContactSheet, contactHeader); err != nil {
		return err
	}
	return repo.EnsureSheet(AuditSheet, auditHeader)
}

func (s *IntakeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SubmitContact persists one contact submission and sends both
// notification emails. The returned error is fatal (persistence);
// notification failures ride on the result.
func (s *IntakeService) SubmitContact(sub model.ContactSubmission) (*IntakeResult, error) {
	result := &IntakeResult{Sheet: ContactSheet}
	now := s.now().In(istLocation)

	if err := s.Sheets.EnsureSheet(ContactSheet, contactHeader); err != nil {
		return result, appErrors.NewStageError(appErrors.StagePersist, err)
	}
	row := []string{
		now.Format("2006-01-02 15:04:05"),
		sub.Name, sub.Email, sub.Phone, sub.Company, sub.Service, sub.Budget, sub.Message,
		"New",
	}
	if err := s.Sheets.AppendRow(ContactSheet, row); err != nil {
		return result, appErrors.NewStageError(appErrors.StagePersist, err)
	}

	submittedAt := now.Format("02/01/2006, 15:04:05")

	if msg, err := RenderContactConfirmation(sub, s.WhatsAppNumber); err != nil {
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	} else if err := s.Mailer.Send(msg); err != nil {
		log.Println("⚠️ failed to send contact confirmation:", err)
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	}

	if msg, err := RenderContactAdminNotification(sub, s.AdminEmail, submittedAt); err != nil {
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	} else if err := s.Mailer.Send(msg); err != nil {
		log.Println("⚠️ failed to send contact admin notification:", err)
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	}

	return result, nil
}

// SubmitAudit uploads attachments, persists one audit submission and
// sends both notification emails. Folder creation and persistence
// failures are fatal; per-file and notification failures are not.
func (s *IntakeService) SubmitAudit(sub model.AuditSubmission) (*IntakeResult, error) {
	result := &IntakeResult{Sheet: AuditSheet}
	now := s.now().In(istLocation)

	if len(sub.Files) > 0 {
		folderURL, links, uploadErrs, err := s.uploadAttachments(sub, now)
		if err != nil {
			return result, err
		}
		result.FolderURL = folderURL
		result.FileLinks = links
		result.UploadErrors = uploadErrs
	}

	if err := s.Sheets.EnsureSheet(AuditSheet, auditHeader); err != nil {
		return result, appErrors.NewStageError(appErrors.StagePersist, err)
	}
	row := []string{
		now.Format("2006-01-02 15:04:05"),
		sub.Name, sub.BusinessName, sub.Industry, sub.RevenueRange, sub.Website,
		sub.Instagram, sub.Facebook, sub.LinkedIn, sub.Email, sub.Phone, sub.BiggestChallenge,
		result.FolderURL,
		strconv.Itoa(len(result.FileLinks)),
		"New",
	}
	if err := s.Sheets.AppendRow(AuditSheet, row); err != nil {
		return result, appErrors.NewStageError(appErrors.StagePersist, err)
	}

	submittedAt := now.Format("02/01/2006, 15:04:05")
	deadline := now.Add(48 * time.Hour).Format("Monday, 2 January 2006")

	if msg, err := RenderAuditConfirmation(sub, result.FolderURL, result.FileLinks, s.WhatsAppNumber); err != nil {
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	} else if err := s.Mailer.Send(msg); err != nil {
		log.Println("⚠️ failed to send audit confirmation:", err)
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	}

	if msg, err := RenderAuditAdminNotification(sub, result.FolderURL, result.FileLinks, s.AdminEmail, submittedAt, deadline); err != nil {
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	} else if err := s.Mailer.Send(msg); err != nil {
		log.Println("⚠️ failed to send audit admin notification:", err)
		result.NotifyErrors = append(result.NotifyErrors, appErrors.NewStageError(appErrors.StageNotify, err))
	}

	return result, nil
}

// uploadAttachments stores every decodable file in a fresh
// per-submission folder. A file that fails to decode or store is
// logged and skipped; the rest still go through.
func (s *IntakeService) uploadAttachments(sub model.AuditSubmission, now time.Time) (string, []model.FileLink, []error, error) {
	owner := sub.BusinessName
	if owner == "" {
		owner = sub.Name
	}
	if owner == "" {
		owner = "Unknown"
	}

	folder := fmt.Sprintf("Audit_%s_%s", owner, now.Format("2006-01-02_15-04-05"))
	folderURL, err := s.Files.CreateFolder(folder)
	if err != nil {
		return "", nil, nil, appErrors.NewStageError(appErrors.StageUpload, err)
	}

	links := []model.FileLink{}
	uploadErrs := []error{}
	for _, f := range sub.Files {
		content, err := base64.StdEncoding.DecodeString(f.Base64)
		if err != nil {
			log.Printf("⚠️ file decode error (%s): %v\n", f.Name, err)
			uploadErrs = append(uploadErrs, appErrors.NewStageError(appErrors.StageUpload, err))
			continue
		}
		fileURL, err := s.Files.SaveFile(folder, f.Name, f.MimeType, content)
		if err != nil {
			log.Printf("⚠️ file upload error (%s): %v\n", f.Name, err)
			uploadErrs = append(uploadErrs, appErrors.NewStageError(appErrors.StageUpload, err))
			continue
		}
		links = append(links, model.FileLink{Name: f.Name, URL: fileURL})
	}

	return folderURL, links, uploadErrs, nil
}
