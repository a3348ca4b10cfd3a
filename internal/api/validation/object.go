package validation

import "github.com/skybi/translation-portal/internal/api/schema"

// RequireKeys makes sure that every key is present in the given object.
// The first missing key is reported; keys are checked in the given order.
func RequireKeys(obj map[string]any, keys ...string) *schema.Error {
	for _, key := range keys {
		if _, ok := obj[key]; !ok {
			return schema.ErrMissingField(key)
		}
	}
	return nil
}
