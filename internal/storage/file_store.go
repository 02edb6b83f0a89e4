package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStoreInterface is the attachment store. One folder per audit
// submission, files stored flat inside it, everything reachable through
// a public link.
type FileStoreInterface interface {
	CreateFolder(name string) (folderURL string, err error)
	SaveFile(folder, name, mimeType string, content []byte) (fileURL string, err error)
}

// DiskFileStore keeps attachments on the local filesystem and hands out
// URLs under <BaseURL>/files/, which the server exposes with a static
// file route.
type DiskFileStore struct {
	Root    string
	BaseURL string
}

func (s *DiskFileStore) CreateFolder(name string) (string, error) {
	safe := sanitizeName(name)
	if safe == "" {
		return "", fmt.Errorf("empty folder name")
	}
	if err := os.MkdirAll(filepath.Join(s.Root, safe), 0o755); err != nil {
		return "", err
	}
	return s.BaseURL + "/files/" + url.PathEscape(safe) + "/", nil
}

func (s *DiskFileStore) SaveFile(folder, name, mimeType string, content []byte) (string, error) {
	safeFolder := sanitizeName(folder)
	safeName := sanitizeName(name)
	if safeName == "" {
		safeName = "file"
	}

	path := filepath.Join(s.Root, safeFolder, safeName)
	if _, err := os.Stat(path); err == nil {
		// Duplicate filename within the submission; keep both.
		safeName = uuid.NewString()[:8] + "_" + safeName
		path = filepath.Join(s.Root, safeFolder, safeName)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + "/files/" + url.PathEscape(safeFolder) + "/" + url.PathEscape(safeName), nil
}

// sanitizeName flattens anything that could escape the store root or
// break a URL into underscores.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}

var _ FileStoreInterface = (*DiskFileStore)(nil)
