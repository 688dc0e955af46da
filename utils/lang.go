package utils

import (
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/hades-platform/field-simulators/locales"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the embedded message files. Turkish is the fallback language.
func InitI18NBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.Turkish)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		entries, err := locales.Files.ReadDir(".")
		if err != nil {
			panic(err)
		}

		for _, e := range entries {
			data, err := locales.Files.ReadFile(e.Name())
			if err != nil {
				panic(err)
			}
			if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
				panic(fmt.Sprintf("parse message file %s: %s", e.Name(), err))
			}
		}
	})
}

func NewLocalizer(lang string) *i18n.Localizer {
	InitI18NBundle()
	return i18n.NewLocalizer(bundle, lang)
}
