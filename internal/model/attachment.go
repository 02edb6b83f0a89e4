// internal/model/attachment.go
package model

// Attachment is a base64-encoded file carried on an audit submission.
// It only lives for the duration of one request before being handed
// to the file store.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}

// FileLink points at one stored attachment.
type FileLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
