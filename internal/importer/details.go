package importer

import (
	"encoding/json"
	"errors"
)

// DefaultDocumentType is used if the descriptor does not name a document type
const DefaultDocumentType = "Adaptive"

// ErrInvalidDetails is returned if the document details descriptor could not be parsed or lacks required values
var ErrInvalidDetails = errors.New("invalid document details")

// DocumentDetails describes a document to import
type DocumentDetails struct {
	DocumentName string        `json:"DocumentName"`
	DocumentType string        `json:"DocumentType"`
	FileDetails  []FileDetails `json:"FileDetails"`
}

// FileDetails describes a single file belonging to an imported document
type FileDetails struct {
	Name              string `json:"Name"`
	LanguageCode      string `json:"LanguageCode"`
	OverwriteIfExists bool   `json:"OverwriteIfExists"`
}

// ParseDetails parses the JSON encoded descriptor sent by the web client.
// Only the first document and its first file are considered.
func ParseDetails(raw string) (*DocumentDetails, error) {
	var details []*DocumentDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, errors.Join(ErrInvalidDetails, err)
	}
	if len(details) == 0 || details[0] == nil {
		return nil, ErrInvalidDetails
	}
	first := details[0]
	if first.DocumentName == "" || len(first.FileDetails) == 0 || first.FileDetails[0].LanguageCode == "" {
		return nil, ErrInvalidDetails
	}
	return first, nil
}

// forFile builds the descriptor sent to the platform for a single uploaded file
func (details *DocumentDetails) forFile(filename string) []*DocumentDetails {
	docType := details.DocumentType
	if docType == "" {
		docType = DefaultDocumentType
	}
	return []*DocumentDetails{
		{
			DocumentName: details.DocumentName,
			DocumentType: docType,
			FileDetails: []FileDetails{
				{
					Name:              filename,
					LanguageCode:      details.FileDetails[0].LanguageCode,
					OverwriteIfExists: false,
				},
			},
		},
	}
}
