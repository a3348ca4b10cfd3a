package normalize

import (
	"encoding/json"
	"fmt"
)

// Index represents a normalized index
type Index struct {
	ID          string `json:"id"`
	APIDomain   string `json:"apiDomain"`
	CreatedDate string `json:"createdDate"`
	Name        string `json:"name"`
	Status      Status `json:"status"`
}

type upstreamIndex struct {
	ID          *ID          `json:"id"`
	APIDomain   *string      `json:"apiDomain"`
	CreatedDate *string      `json:"createdDate"`
	Name        *string      `json:"name"`
	IsAvailable availability `json:"isAvailable"`
}

// Indices normalizes an upstream index list payload.
// The list is expected under the 'indexes' key; without it, the payload itself is treated as the only entry.
// A present 'indexes' value that is no list yields no indices.
func Indices(payload []byte) ([]*Index, error) {
	raws, err := entries(payload, func(obj map[string]json.RawMessage) ([]json.RawMessage, bool) {
		raw, ok := obj["indexes"]
		if !ok {
			return nil, false
		}
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, true
		}
		return list, true
	})
	if err != nil {
		return nil, err
	}

	indices := make([]*Index, 0, len(raws))
	for i, raw := range raws {
		if !isObject(raw) {
			continue
		}
		up := new(upstreamIndex)
		if err := json.Unmarshal(raw, up); err != nil {
			return nil, fmt.Errorf("%w: index #%d: %v", ErrMalformedEntry, i, err)
		}
		indices = append(indices, &Index{
			ID:          orDefault(up.ID, "unknown"),
			APIDomain:   orDefault(up.APIDomain, "unknown"),
			CreatedDate: orDefault(up.CreatedDate, ""),
			Name:        orDefault(up.Name, "Unnamed Index"),
			Status:      up.IsAvailable.status(),
		})
	}
	return indices, nil
}
