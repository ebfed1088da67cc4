package utils

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalize(t *testing.T) {
	message := &i18n.Message{ID: "error_1202", Other: "fallback"}

	require.NoError(t, InitI18NBundle("../i18n"))
	defer func() {
		bundleLock.Lock()
		bundle = newBundle()
		bundleLock.Unlock()
	}()

	assert.Equal(t, "nemate dozvolu za ovu radnju", Localize(NewLocalizer("bs"), message))
	assert.Equal(t, "you are not allowed to do this", Localize(NewLocalizer("en-US,en;q=0.9"), message))
	assert.Equal(t, "you are not allowed to do this", Localize(NewLocalizer(""), message))
	assert.Equal(t, "pohrana podataka trenutno nije dostupna, pokušajte ponovo",
		Localize(NewLocalizer("bs"), &i18n.Message{ID: "error_1204", Other: "fallback"}))
	assert.Equal(t, "unknown", Localize(NewLocalizer("bs"), &i18n.Message{ID: "missing", Other: "unknown"}))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("./does-not-exist"))
}
