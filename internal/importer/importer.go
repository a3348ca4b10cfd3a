// Package importer packages uploaded tabular files into multipart import requests for the translation platform.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/translation-portal/internal/upstream"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	fieldDocumentDetails = "DocumentDetails"
	fieldFiles           = "FILES"
	fileContentType      = "text/tab-separated-values"
)

// Poster is the part of the platform client the importer needs
type Poster interface {
	PostMultipart(ctx context.Context, token, path string, query url.Values, body io.Reader, contentType string) (*upstream.Result, error)
}

// Importer uploads documents to the platform's import endpoint
type Importer struct {
	Client Poster
	// Dir is the directory the scoped temporary directories are created in
	Dir string
}

// Upload represents an uploaded file
type Upload struct {
	Filename string
	Content  io.Reader
}

// Import stages the uploaded file in a temporary directory and posts it together with the document details to
// the platform. The temporary directory is removed before Import returns, no matter the outcome.
func (importer *Importer) Import(ctx context.Context, token, workspaceID, rawDetails string, upload *Upload) (*upstream.Result, error) {
	details, err := ParseDetails(rawDetails)
	if err != nil {
		return nil, err
	}

	filename := filepath.Base(upload.Filename)
	if filename == "." || filename == ".." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: no file name", ErrInvalidDetails)
	}

	dir, err := os.MkdirTemp(importer.Dir, "import-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("could not remove import scratch directory")
		}
	}()

	path := filepath.Join(dir, filename)
	if err := stage(path, upload.Content); err != nil {
		return nil, err
	}

	body, contentType, err := encode(details.forFile(filename), filename, path)
	if err != nil {
		return nil, err
	}

	log.Info().Str("workspace_id", workspaceID).Str("document", details.DocumentName).Str("file", filename).Msg("importing document")
	return importer.Client.PostMultipart(ctx, token, "/documents/import", url.Values{"workspaceId": {workspaceID}}, body, contentType)
}

func stage(path string, content io.Reader) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create staged file: %w", err)
	}
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		return fmt.Errorf("write staged file: %w", err)
	}
	return file.Close()
}

// encode builds the multipart body consisting of the document details field and the staged file
func encode(details []*DocumentDetails, filename, path string) (*bytes.Buffer, string, error) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open staged file: %w", err)
	}
	defer file.Close()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if err := writer.WriteField(fieldDocumentDetails, string(detailsJSON)); err != nil {
		return nil, "", err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldFiles, escapeQuotes(filename)))
	header.Set("Content-Type", fileContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
