// internal/model/submission.go
package model

// ContactSubmission is one contact form fill. Missing fields default to "".
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

// AuditSubmission is one free-audit form fill, with optional attachments.
type AuditSubmission struct {
	Name             string       `json:"name"`
	BusinessName     string       `json:"businessName"`
	Industry         string       `json:"industry"`
	RevenueRange     string       `json:"revenueRange"`
	Website          string       `json:"website"`
	Instagram        string       `json:"instagram"`
	Facebook         string       `json:"facebook"`
	LinkedIn         string       `json:"linkedin"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	BiggestChallenge string       `json:"biggestChallenge"`
	Files            []Attachment `json:"files,omitempty"`
}
