// Package translate formats user-visible messages in the host's language.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	current language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chip8: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message printer for the best match of the
// given BCP 47 language names. With no names, en-US is used.
func SetLanguage(names ...string) {
	if len(names) == 0 {
		names = []string{"en-US"}
	}

	tag := message.MatchLanguage(names...)

	mutex.Lock()
	current = tag
	printer = message.NewPrinter(tag)
	mutex.Unlock()
}

// Language returns the currently selected message language.
func Language() language.Tag {
	mutex.RLock()
	defer mutex.RUnlock()

	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
