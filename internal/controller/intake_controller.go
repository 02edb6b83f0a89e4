// internal/controller/intake_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hotacreatives/intake-backend/internal/model"
	"github.com/hotacreatives/intake-backend/internal/response"
	"github.com/hotacreatives/intake-backend/internal/service"
)

const (
	MsgServerError      = "Server error – please try again."
	MsgInvalidFormType  = "Invalid form type"
	MsgProcessingFailed = "Could not process your submission."
	MsgContactSubmitted = "Contact form submitted successfully"
	MsgAuditSubmitted   = "Audit request submitted successfully!"
)

// intakePayload is the superset of both form bodies plus the formType
// discriminator the combined deployment dispatches on.
type intakePayload struct {
	FormType string `json:"formType"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`

	BusinessName     string             `json:"businessName"`
	Industry         string             `json:"industry"`
	RevenueRange     string             `json:"revenueRange"`
	Website          string             `json:"website"`
	Instagram        string             `json:"instagram"`
	Facebook         string             `json:"facebook"`
	LinkedIn         string             `json:"linkedin"`
	BiggestChallenge string             `json:"biggestChallenge"`
	Files            []model.Attachment `json:"files"`
}

func (p *intakePayload) contact() model.ContactSubmission {
	return model.ContactSubmission{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Company: p.Company,
		Service: p.Service,
		Budget:  p.Budget,
		Message: p.Message,
	}
}

func (p *intakePayload) audit() model.AuditSubmission {
	return model.AuditSubmission{
		Name:             p.Name,
		BusinessName:     p.BusinessName,
		Industry:         p.Industry,
		RevenueRange:     p.RevenueRange,
		Website:          p.Website,
		Instagram:        p.Instagram,
		Facebook:         p.Facebook,
		LinkedIn:         p.LinkedIn,
		Email:            p.Email,
		Phone:            p.Phone,
		BiggestChallenge: p.BiggestChallenge,
		Files:            p.Files,
	}
}

type IntakeController struct {
	IntakeService *service.IntakeService
}

// Health is the liveness probe: same envelope every time, used by the
// client as a pre-submit check.
func (c *IntakeController) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, true, "HOTA Intake API is live.")
}

// Submit dispatches on formType. Nothing is persisted or emailed for a
// body we cannot parse or route.
func (c *IntakeController) Submit(w http.ResponseWriter, r *http.Request) {
	var payload intakePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("⚠️ invalid submit body:", err)
		response.JSON(w, false, MsgServerError)
		return
	}

	switch payload.FormType {
	case "contact":
		if _, err := c.IntakeService.SubmitContact(payload.contact()); err != nil {
			log.Println("❌ contact intake failed:", err)
			response.JSONWithData(w, false, MsgProcessingFailed, nil)
			return
		}
		response.JSONWithData(w, true, MsgContactSubmitted, nil)
	case "audit":
		if _, err := c.IntakeService.SubmitAudit(payload.audit()); err != nil {
			log.Println("❌ audit intake failed:", err)
			response.JSON(w, false, MsgProcessingFailed)
			return
		}
		response.JSON(w, true, MsgAuditSubmitted)
	default:
		response.JSON(w, false, MsgInvalidFormType)
	}
}
