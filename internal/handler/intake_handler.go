// internal/handler/intake_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hotacreatives/intake-backend/internal/controller"
	"github.com/hotacreatives/intake-backend/internal/model"
	"github.com/hotacreatives/intake-backend/internal/response"
	"github.com/hotacreatives/intake-backend/internal/service"
)

// IntakeHandler exposes the single-purpose endpoints. Each one
// hard-binds a form type, mirroring the standalone deployments, so the
// body needs no formType discriminator.
type IntakeHandler struct {
	Service *service.IntakeService
}

func (h *IntakeHandler) ContactHealth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, true, "HOTA Contact API is live.")
}

func (h *IntakeHandler) AuditHealth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, true, "HOTA Free Audit API is live.")
}

// HandleContact processes a contact form body posted straight to the
// contact endpoint.
func (h *IntakeHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var sub model.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Println("⚠️ invalid contact body:", err)
		response.JSON(w, false, controller.MsgServerError)
		return
	}

	if _, err := h.Service.SubmitContact(sub); err != nil {
		log.Println("❌ contact intake failed:", err)
		response.JSONWithData(w, false, controller.MsgProcessingFailed, nil)
		return
	}
	response.JSONWithData(w, true, controller.MsgContactSubmitted, nil)
}

// HandleAudit processes an audit form body posted straight to the
// audit endpoint.
func (h *IntakeHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	var sub model.AuditSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Println("⚠️ invalid audit body:", err)
		response.JSON(w, false, controller.MsgServerError)
		return
	}

	if _, err := h.Service.SubmitAudit(sub); err != nil {
		log.Println("❌ audit intake failed:", err)
		response.JSON(w, false, controller.MsgProcessingFailed)
		return
	}
	response.JSON(w, true, controller.MsgAuditSubmitted)
}
