// internal/service/template_service.go
package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/hotacreatives/intake-backend/internal/model"
)

// serviceLabels maps the short codes the contact form posts to the
// human labels used in emails.
var serviceLabels = map[string]string{
	"social-media": "Social Media Management",
	"content":      "Content Creation",
	"performance":  "Performance Marketing",
	"branding":     "Brand Identity",
	"video":        "Video Production",
	"website":      "Website Design",
	"full-package": "Full Package",
}

// ServiceLabel resolves a service code to its label, falling back to
// the raw code, or "Not specified" when empty.
func ServiceLabel(code string) string {
	if code == "" {
		return "Not specified"
	}
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

func fileCountText(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func orFallback(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// emailRow is one label/value line in a summary or detail block. Rows
// with an empty value are dropped before rendering. URL, when set,
// turns the value into a link.
type emailRow struct {
	Label string
	Value string
	URL   string
}

func appendRow(rows []emailRow, label, value string) []emailRow {
	if strings.TrimSpace(value) == "" {
		return rows
	}
	return append(rows, emailRow{Label: label, Value: value})
}

func appendLinkRow(rows []emailRow, label, value, href string) []emailRow {
	if strings.TrimSpace(value) == "" {
		return rows
	}
	return append(rows, emailRow{Label: label, Value: value, URL: href})
}

const rowsPartial = `{{define "rows"}}{{range .}}
<tr>
  <td style="padding:6px 0;font-size:13px;color:#888;width:140px;vertical-align:top;">{{.Label}}</td>
  <td style="padding:6px 0;font-size:13px;color:#E0E0E0;font-weight:600;">
    {{- if .URL}}<a href="{{.URL}}" style="color:#BFFF0B;text-decoration:underline;">{{.Value}}</a>{{else}}{{.Value}}{{end -}}
  </td>
</tr>{{end}}{{end}}`

const emailShell = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1"></head>
<body style="margin:0;padding:0;background:#0A0A0A;font-family:Inter,Helvetica,Arial,sans-serif;color:#E0E0E0;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#0A0A0A;">
<tr><td align="center" style="padding:40px 16px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;border-radius:16px;overflow:hidden;background:#111111;">
<tr><td style="background:#0A0A0A;padding:36px 32px 22px;text-align:center;border-bottom:2px solid #BFFF0B;">
<h1 style="margin:0;font-size:34px;font-weight:900;letter-spacing:-1px;color:#BFFF0B;">HOTA</h1>
<p style="margin:6px 0 0;font-size:13px;letter-spacing:2px;text-transform:uppercase;color:#888;">India&#39;s Creative Growth Agency</p>
</td></tr>
<tr><td style="padding:32px;">{{block "body" .}}{{end}}</td></tr>
<tr><td style="background:#0A0A0A;padding:26px 32px;text-align:center;border-top:1px solid #1F1F1F;">
<p style="margin:0 0 4px;font-size:14px;font-weight:700;color:#BFFF0B;">HOTA Creative Agency</p>
<p style="margin:0 0 10px;font-size:12px;color:#666;">We Don&#39;t Post. We Position.</p>
<p style="margin:0;font-size:12px;">
<a href="https://www.instagram.com/hota.creatives" style="color:#888;text-decoration:none;margin:0 8px;">Instagram</a>
<a href="https://www.linkedin.com/company/hota-creatives/" style="color:#888;text-decoration:none;margin:0 8px;">LinkedIn</a>
<a href="https://hotacreatives.in" style="color:#888;text-decoration:none;margin:0 8px;">Website</a>
</p></td></tr>
</table></td></tr></table></body></html>`

var contactConfirmationTmpl = template.Must(template.Must(template.New("shell").Parse(emailShell)).Parse(rowsPartial + `
{{define "body"}}
<h2 style="margin:0 0 8px;font-size:24px;font-weight:800;color:#FFFFFF;">Hey {{.Name}}! &#128075;</h2>
<p style="margin:0 0 20px;font-size:15px;line-height:1.7;color:#B0B0B0;">We&#39;ve received your message and we&#39;re pumped to connect with you. Our team will review your request within <strong style="color:#BFFF0B;">24 hours</strong> and reach out via email or WhatsApp to discuss your {{.ServiceLabel}} project.</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#1A1A1A;border-radius:12px;border-left:4px solid #BFFF0B;margin:0 0 24px;">
<tr><td style="padding:18px 22px;">
<p style="margin:0 0 10px;font-size:13px;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:#BFFF0B;">Your message details</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">{{template "rows" .Rows}}</table>
</td></tr></table>
<p style="margin:0 0 8px;font-size:14px;color:#B0B0B0;">Need anything urgent in the meantime?</p>
<table role="presentation" width="100%"><tr><td align="center">
<a href="{{.WhatsAppURL}}" style="display:inline-block;background:#BFFF0B;color:#000;font-size:15px;font-weight:800;padding:14px 36px;border-radius:50px;text-decoration:none;">WhatsApp Us Now</a>
</td></tr></table>
{{end}}`))

var contactAdminTmpl = template.Must(template.Must(template.New("shell").Parse(emailShell)).Parse(rowsPartial + `
{{define "body"}}
<p style="margin:0 0 18px;padding:12px;background:#BFFF0B;color:#000;border-radius:6px;font-weight:800;text-align:center;">&#9889; Respond within 24 hours</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">{{template "rows" .Rows}}</table>
<p style="margin:20px 0 0;font-size:12px;color:#555;">Submitted: {{.SubmittedAt}}</p>
<table role="presentation" width="100%" style="margin:22px 0 0;"><tr>
<td align="center" style="padding:4px;"><a href="{{.WhatsAppURL}}" style="display:inline-block;background:#25D366;color:#fff;font-size:13px;font-weight:700;padding:12px 24px;border-radius:8px;text-decoration:none;">WhatsApp Client</a></td>
<td align="center" style="padding:4px;"><a href="{{.MailtoURL}}" style="display:inline-block;background:#BFFF0B;color:#000;font-size:13px;font-weight:700;padding:12px 24px;border-radius:8px;text-decoration:none;">Email Client</a></td>
</tr></table>
{{end}}`))

var auditConfirmationTmpl = template.Must(template.Must(template.New("shell").Parse(emailShell)).Parse(rowsPartial + `
{{define "body"}}
<h2 style="margin:0 0 8px;font-size:24px;font-weight:800;color:#FFFFFF;">Hey {{.Name}}! &#128640;</h2>
<p style="margin:0 0 20px;font-size:15px;line-height:1.7;color:#B0B0B0;">Your <strong style="color:#BFFF0B;">Free Brand Growth Audit</strong> request has been received! Our strategy team is already gearing up to deep-dive into <strong style="color:#FFFFFF;">{{.BusinessName}}</strong>.</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#1A1A1A;border-radius:12px;border-left:4px solid #BFFF0B;margin:0 0 24px;">
<tr><td style="padding:18px 22px;">
<p style="margin:0 0 10px;font-size:13px;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:#BFFF0B;">What happens next</p>
<p style="margin:0 0 6px;font-size:14px;color:#E0E0E0;">&#128269; &nbsp;We analyse your brand presence across all platforms</p>
<p style="margin:0 0 6px;font-size:14px;color:#E0E0E0;">&#128202; &nbsp;Deep-dive into your competitors &amp; market positioning</p>
<p style="margin:0;font-size:14px;color:#E0E0E0;">&#128232; &nbsp;Your personalised audit report lands within <strong style="color:#BFFF0B;">48 hours</strong></p>
</td></tr></table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#1A1A1A;border-radius:12px;margin:0 0 26px;">
<tr><td style="padding:18px 22px;">
<p style="margin:0 0 10px;font-size:13px;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:#BFFF0B;">Your submission</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">{{template "rows" .Rows}}</table>
</td></tr></table>
<table role="presentation" width="100%"><tr><td align="center">
<a href="{{.WhatsAppURL}}" style="display:inline-block;background:#BFFF0B;color:#000;font-size:15px;font-weight:800;padding:14px 36px;border-radius:50px;text-decoration:none;">WhatsApp Us Now</a>
</td></tr></table>
{{end}}`))

var auditAdminTmpl = template.Must(template.Must(template.New("shell").Parse(emailShell)).Parse(rowsPartial + `
{{define "body"}}
<p style="margin:0 0 18px;padding:12px;background:#BFFF0B;color:#000;border-radius:6px;font-weight:800;text-align:center;">&#9889; DELIVER AUDIT WITHIN 48 HOURS</p>
<p style="margin:0 0 12px;font-size:12px;font-weight:700;text-transform:uppercase;letter-spacing:1.5px;color:#BFFF0B;border-bottom:1px solid #222;padding-bottom:8px;">Submission details</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">{{template "rows" .Rows}}</table>
{{if .FileLinks}}
<p style="margin:22px 0 12px;font-size:12px;font-weight:700;text-transform:uppercase;letter-spacing:1.5px;color:#BFFF0B;border-bottom:1px solid #222;padding-bottom:8px;">Uploaded files ({{.FileCountText}})</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0">{{template "rows" .FileLinks}}</table>
{{end}}
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:22px 0 0;">
<tr><td style="padding:14px 18px;background:#1A1A1A;border-radius:10px;border-left:4px solid #BFFF0B;">
<p style="margin:0 0 6px;font-size:12px;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:#BFFF0B;">Biggest challenge</p>
<p style="margin:0;font-size:14px;line-height:1.7;color:#CCC;">{{.Challenge}}</p>
</td></tr></table>
<p style="margin:18px 0 0;font-size:12px;color:#555;">Submitted: {{.SubmittedAt}}</p>
<p style="margin:14px 0 0;padding:12px;background:#1A1A1A;border-radius:6px;text-align:center;font-size:13px;color:#E0E0E0;"><strong style="color:#BFFF0B;">&#9201; DEADLINE:</strong> Deliver audit report by {{.Deadline}}</p>
<table role="presentation" width="100%" style="margin:22px 0 0;"><tr>
<td align="center" style="padding:4px;"><a href="{{.WhatsAppURL}}" style="display:inline-block;background:#25D366;color:#fff;font-size:13px;font-weight:700;padding:12px 24px;border-radius:8px;text-decoration:none;">WhatsApp Client</a></td>
<td align="center" style="padding:4px;"><a href="{{.MailtoURL}}" style="display:inline-block;background:#BFFF0B;color:#000;font-size:13px;font-weight:700;padding:12px 24px;border-radius:8px;text-decoration:none;">Email Client</a></td>
{{if .FolderURL}}<td align="center" style="padding:4px;"><a href="{{.FolderURL}}" style="display:inline-block;background:#4285F4;color:#fff;font-size:13px;font-weight:700;padding:12px 24px;border-radius:8px;text-decoration:none;">Open Folder</a></td>{{end}}
</tr></table>
{{end}}`))

// RenderContactConfirmation builds the thank-you email for a contact
// submission.
func RenderContactConfirmation(sub model.ContactSubmission, agencyWhatsApp string) (model.EmailMessage, error) {
	rows := []emailRow{}
	rows = appendRow(rows, "Service", ServiceLabel(sub.Service))
	rows = appendRow(rows, "Budget", sub.Budget)
	rows = appendRow(rows, "Company", sub.Company)
	rows = appendRow(rows, "Message", sub.Message)

	wa := "https://wa.me/" + agencyWhatsApp + "?text=" + url.QueryEscape("Hi! I just submitted a contact form")

	view := struct {
		Name         string
		ServiceLabel string
		Rows         []emailRow
		WhatsAppURL  template.URL
	}{
		Name:         orFallback(sub.Name, "there"),
		ServiceLabel: ServiceLabel(sub.Service),
		Rows:         rows,
		WhatsAppURL:  template.URL(wa),
	}

	var buf bytes.Buffer
	if err := contactConfirmationTmpl.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, err
	}
	return model.EmailMessage{
		To:       sub.Email,
		Subject:  "We Got Your Message! – HOTA Creative Agency",
		HTMLBody: buf.String(),
	}, nil
}

// RenderContactAdminNotification builds the internal alert for a
// contact submission.
func RenderContactAdminNotification(sub model.ContactSubmission, adminEmail, submittedAt string) (model.EmailMessage, error) {
	rows := []emailRow{}
	rows = appendRow(rows, "Name", sub.Name)
	rows = appendLinkRow(rows, "Email", sub.Email, "mailto:"+sub.Email)
	rows = appendLinkRow(rows, "Phone", sub.Phone, "tel:"+sub.Phone)
	rows = appendRow(rows, "Company", sub.Company)
	rows = appendRow(rows, "Service", ServiceLabel(sub.Service))
	rows = appendRow(rows, "Budget", orFallback(sub.Budget, "Not specified"))
	rows = appendRow(rows, "Message", orFallback(sub.Message, "No message provided"))

	view := struct {
		Rows        []emailRow
		SubmittedAt string
		WhatsAppURL template.URL
		MailtoURL   template.URL
	}{
		Rows:        rows,
		SubmittedAt: submittedAt,
		WhatsAppURL: template.URL("https://wa.me/" + digitsOnly(sub.Phone)),
		MailtoURL:   template.URL("mailto:" + sub.Email),
	}

	var buf bytes.Buffer
	if err := contactAdminTmpl.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, err
	}
	return model.EmailMessage{
		To:       adminEmail,
		Subject:  "🔔 New Contact Form Submission - " + orFallback(sub.Name, "Unknown"),
		HTMLBody: buf.String(),
	}, nil
}

// RenderAuditConfirmation builds the thank-you email for an audit
// request.
func RenderAuditConfirmation(sub model.AuditSubmission, folderURL string, links []model.FileLink, agencyWhatsApp string) (model.EmailMessage, error) {
	rows := []emailRow{}
	rows = appendRow(rows, "Business", sub.BusinessName)
	rows = appendRow(rows, "Industry", sub.Industry)
	rows = appendRow(rows, "Revenue", sub.RevenueRange)
	rows = appendRow(rows, "Website", sub.Website)
	rows = appendRow(rows, "Instagram", sub.Instagram)
	if folderURL != "" {
		rows = appendLinkRow(rows, "Uploaded Files", fileCountText(len(links))+" uploaded", folderURL)
	}

	business := orFallback(sub.BusinessName, "my brand")
	wa := "https://wa.me/" + agencyWhatsApp + "?text=" +
		url.QueryEscape("Hi! I just submitted a Free Brand Audit request for "+business)

	view := struct {
		Name         string
		BusinessName string
		Rows         []emailRow
		WhatsAppURL  template.URL
	}{
		Name:         orFallback(sub.Name, "there"),
		BusinessName: orFallback(sub.BusinessName, "your brand"),
		Rows:         rows,
		WhatsAppURL:  template.URL(wa),
	}

	var buf bytes.Buffer
	if err := auditConfirmationTmpl.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, err
	}
	return model.EmailMessage{
		To:       sub.Email,
		Subject:  "Your Free Brand Audit is On Its Way! 🚀 – HOTA Creatives",
		HTMLBody: buf.String(),
	}, nil
}

// RenderAuditAdminNotification builds the internal alert for an audit
// request, including stored file links and the delivery deadline.
func RenderAuditAdminNotification(sub model.AuditSubmission, folderURL string, links []model.FileLink, adminEmail, submittedAt, deadline string) (model.EmailMessage, error) {
	rows := []emailRow{}
	rows = appendRow(rows, "Name", sub.Name)
	rows = appendLinkRow(rows, "Email", sub.Email, "mailto:"+sub.Email)
	rows = appendLinkRow(rows, "Phone", sub.Phone, "tel:"+sub.Phone)
	rows = appendRow(rows, "Business Name", sub.BusinessName)
	rows = appendRow(rows, "Industry", sub.Industry)
	rows = appendRow(rows, "Revenue Range", sub.RevenueRange)
	rows = appendLinkRow(rows, "Website", sub.Website, sub.Website)
	if sub.Instagram != "" {
		handle := strings.TrimPrefix(sub.Instagram, "@")
		rows = appendLinkRow(rows, "Instagram", sub.Instagram, "https://instagram.com/"+handle)
	}
	rows = appendRow(rows, "Facebook", sub.Facebook)
	rows = appendRow(rows, "LinkedIn", sub.LinkedIn)
	if folderURL != "" {
		rows = appendLinkRow(rows, "Files Folder", "Open Folder", folderURL)
	}

	fileRows := []emailRow{}
	for _, l := range links {
		fileRows = appendLinkRow(fileRows, l.Name, l.URL, l.URL)
	}

	view := struct {
		Rows          []emailRow
		FileLinks     []emailRow
		FileCountText string
		Challenge     string
		SubmittedAt   string
		Deadline      string
		WhatsAppURL   template.URL
		MailtoURL     template.URL
		FolderURL     template.URL
	}{
		Rows:          rows,
		FileLinks:     fileRows,
		FileCountText: fileCountText(len(links)),
		Challenge:     orFallback(sub.BiggestChallenge, "Not specified"),
		SubmittedAt:   submittedAt,
		Deadline:      deadline,
		WhatsAppURL:   template.URL("https://wa.me/" + digitsOnly(sub.Phone)),
		MailtoURL:     template.URL("mailto:" + sub.Email),
		FolderURL:     template.URL(folderURL),
	}

	var buf bytes.Buffer
	if err := auditAdminTmpl.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, err
	}

	subject := fmt.Sprintf("📊 New Audit Request – %s (%s)",
		orFallback(sub.BusinessName, orFallback(sub.Name, "Unknown")),
		orFallback(sub.Industry, "Unknown"))

	return model.EmailMessage{
		To:       adminEmail,
		Subject:  subject,
		HTMLBody: buf.String(),
	}, nil
}
