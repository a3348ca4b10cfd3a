package normalize

import (
	"encoding/json"
	"fmt"
)

// DocumentTypeAdaptive is the only document type surfaced to the web client
const DocumentTypeAdaptive = "Adaptive"

// Document represents a normalized document
type Document struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	CreatedDate  string `json:"createdDate"`
	Status       Status `json:"status"`
	LanguagePair string `json:"lp,omitempty"`
}

type upstreamDocumentPage struct {
	Documents *[]json.RawMessage `json:"documents"`
}

type upstreamDocumentEntry struct {
	DocumentInfo json.RawMessage `json:"documentInfo"`
}

type upstreamDocument struct {
	ID          *ID                `json:"id"`
	Name        *string            `json:"name"`
	CreatedDate *string            `json:"createdDate"`
	IsAvailable availability       `json:"isAvailable"`
	Languages   []upstreamLanguage `json:"languages"`
}

type upstreamDocumentKind struct {
	DocumentType any `json:"documentType"`
}

type upstreamLanguage struct {
	LanguageCode string `json:"languageCode"`
}

// LanguagePair joins the codes of the first two languages with a hyphen.
// ok is false if there are fewer than two languages or one of both codes is empty.
func (doc *upstreamDocument) LanguagePair() (string, bool) {
	if len(doc.Languages) < 2 {
		return "", false
	}
	source, target := doc.Languages[0].LanguageCode, doc.Languages[1].LanguageCode
	if source == "" || target == "" {
		return "", false
	}
	return source + "-" + target, true
}

// Documents normalizes an upstream document list payload.
// Only adaptive documents are returned. Entries that are not JSON objects or not adaptive documents are skipped;
// adaptive entries that do not match the document schema make the whole call fail with ErrMalformedEntry.
func Documents(payload []byte) ([]*Document, error) {
	raws, err := entries(payload, func(obj map[string]json.RawMessage) ([]json.RawMessage, bool) {
		raw, ok := obj["paginatedDocuments"]
		if !ok || !isObject(raw) {
			return nil, false
		}
		page := new(upstreamDocumentPage)
		if err := json.Unmarshal(raw, page); err != nil || page.Documents == nil {
			return nil, false
		}
		return *page.Documents, true
	})
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(raws))
	for i, raw := range raws {
		doc, ok, err := document(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: document #%d: %v", ErrMalformedEntry, i, err)
		}
		if ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// document normalizes a single upstream document entry.
// ok is false if the entry is no object or not an adaptive document.
func document(raw json.RawMessage) (*Document, bool, error) {
	if !isObject(raw) {
		return nil, false, nil
	}

	entry := new(upstreamDocumentEntry)
	if err := json.Unmarshal(raw, entry); err != nil {
		return nil, false, err
	}
	info := raw
	if isObject(entry.DocumentInfo) {
		info = entry.DocumentInfo
	}

	kind := new(upstreamDocumentKind)
	if err := json.Unmarshal(info, kind); err != nil {
		return nil, false, err
	}
	if documentType, _ := kind.DocumentType.(string); documentType != DocumentTypeAdaptive {
		return nil, false, nil
	}

	up := new(upstreamDocument)
	if err := json.Unmarshal(info, up); err != nil {
		return nil, false, err
	}

	doc := &Document{
		ID:          orDefault(up.ID, "unknown"),
		Name:        orDefault(up.Name, "Unnamed Document"),
		Type:        DocumentTypeAdaptive,
		CreatedDate: orDefault(up.CreatedDate, ""),
		Status:      up.IsAvailable.status(),
	}
	if lp, ok := up.LanguagePair(); ok {
		doc.LanguagePair = lp
	}
	return doc, true, nil
}
