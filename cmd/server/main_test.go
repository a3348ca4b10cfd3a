package main

import (
	"testing"

	"github.com/skybi/translation-portal/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRedacted(t *testing.T) {
	cfg := &config.Config{
		APIURL:         "https://platform.example.org",
		SecretKey:      "secret",
		TranslationKey: "sub-key",
		RedisURL:       "redis://:pw@localhost:6379",
	}

	cpy := redacted(cfg)
	assert.Equal(t, "***", cpy.SecretKey)
	assert.Equal(t, "***", cpy.TranslationKey)
	assert.Equal(t, "***", cpy.RedisURL)
	assert.Equal(t, "", cpy.GPTKey)
	assert.Equal(t, "https://platform.example.org", cpy.APIURL)
	assert.Equal(t, "secret", cfg.SecretKey)
}
