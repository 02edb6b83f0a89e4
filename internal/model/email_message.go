// internal/model/email_message.go
package model

// EmailMessage is a fire-and-forget HTML notification. No delivery
// tracking, no retry.
type EmailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}
