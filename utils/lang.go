package utils

import (
	"path"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var (
	bundle     *i18n.Bundle
	bundleLock sync.RWMutex

	// Languages a message file is loaded for
	Languages = []string{"en", "bs"}
)

func init() {
	bundle = newBundle()
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	return b
}

// InitI18NBundle loads one message file per supported language from dir
func InitI18NBundle(dir string) error {
	b := newBundle()
	for _, lang := range Languages {
		if _, err := b.LoadMessageFile(path.Join(dir, lang+".yaml")); err != nil {
			return err
		}
	}

	bundleLock.Lock()
	bundle = b
	bundleLock.Unlock()
	return nil
}

func NewLocalizer(langs ...string) *i18n.Localizer {
	bundleLock.RLock()
	defer bundleLock.RUnlock()
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize renders a message, falling back to its default text when no
// translation is loaded
func Localize(l *i18n.Localizer, message *i18n.Message) string {
	s, err := l.Localize(&i18n.LocalizeConfig{DefaultMessage: message})
	if err != nil || s == "" {
		return message.Other
	}
	return s
}
