// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the current locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the system reports no locale at all.
const DEFAULT_LOCALE = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Locales returns the system locales, falling back to DEFAULT_LOCALE.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Debugf("intcode: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	return
}

// Tag returns the language tag the messages are rendered in.
func Tag() language.Tag {
	return message.MatchLanguage(Locales()...)
}

func get() *message.Printer {
	printerOnce.Do(func() {
		printer = message.NewPrinter(Tag())
	})
	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return get().Sprintf(key, args...)
}
