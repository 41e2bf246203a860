package localtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	ut "github.com/go-playground/universal-translator"
)

// Style is a date or time verbosity level
type Style string

const (
	Full   Style = "full"
	Long   Style = "long"
	Medium Style = "medium"
	Short  Style = "short"
)

var universal = ut.New(en.New(),
	en.New(), en_US.New(), en_GB.New(), en_CA.New(), en_AU.New(),
	fr.New(), fr_FR.New(),
	de.New(), de_DE.New(),
	es.New(), es_ES.New(),
)

// Formatter renders instants in a fixed locale, zone and style
type Formatter struct {
	trans     locales.Translator
	loc       *time.Location
	dateStyle Style
	timeStyle Style
}

// NewFormatter builds a Formatter. locale accepts BCP 47 ("en-US") or
// CLDR ("en_US") tags; an unknown region falls back to its base language.
func NewFormatter(locale, timeZone string, dateStyle, timeStyle Style) (*Formatter, error) {
	trans, ok := lookup(locale)
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", timeZone, err)
	}

	if !dateStyle.Valid() {
		return nil, fmt.Errorf("invalid date style %q", dateStyle)
	}
	if !timeStyle.Valid() {
		return nil, fmt.Errorf("invalid time style %q", timeStyle)
	}

	return &Formatter{
		trans:     trans,
		loc:       loc,
		dateStyle: dateStyle,
		timeStyle: timeStyle,
	}, nil
}

// SupportedLocale reports whether locale resolves to a registered translator
func SupportedLocale(locale string) bool {
	_, ok := lookup(locale)
	return ok
}

// Valid reports whether s is one of the four known styles
func (s Style) Valid() bool {
	switch s {
	case Full, Long, Medium, Short:
		return true
	}
	return false
}

// connectors used between a full or long date and the time, by language
var atConnectors = map[string]string{
	"en": " at ",
	"fr": " à ",
	"de": " um ",
}

var dayPeriod = regexp.MustCompile(`\b(am|pm)\b`)

// Format renders t in the formatter's zone as CLDR date-time glue does:
// "<date>, <time>", or "<date> at <time>" for full and long dates in
// languages with a connector word.
func (f *Formatter) Format(t time.Time) string {
	t = t.In(f.loc)
	return f.date(t) + f.connector() + f.time(t)
}

func (f *Formatter) language() string {
	lang, _, _ := strings.Cut(f.trans.Locale(), "_")
	return lang
}

func (f *Formatter) connector() string {
	if f.dateStyle == Full || f.dateStyle == Long {
		if c, ok := atConnectors[f.language()]; ok {
			return c
		}
	}
	return ", "
}

func (f *Formatter) date(t time.Time) string {
	switch f.dateStyle {
	case Full:
		return f.trans.FmtDateFull(t)
	case Long:
		return f.trans.FmtDateLong(t)
	case Short:
		return f.trans.FmtDateShort(t)
	default:
		return f.trans.FmtDateMedium(t)
	}
}

func (f *Formatter) time(t time.Time) string {
	var out string
	switch f.timeStyle {
	case Full:
		out = f.trans.FmtTimeFull(t)
	case Long:
		out = f.trans.FmtTimeLong(t)
	case Medium:
		out = f.trans.FmtTimeMedium(t)
	default:
		out = f.trans.FmtTimeShort(t)
	}

	// English day periods are written "AM"/"PM"
	if f.language() == "en" {
		out = dayPeriod.ReplaceAllStringFunc(out, strings.ToUpper)
	}
	return out
}

func lookup(locale string) (locales.Translator, bool) {
	tag := strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	if tag == "" {
		return nil, false
	}

	candidates := []string{tag}
	if base, _, found := strings.Cut(tag, "_"); found {
		candidates = append(candidates, base)
	}

	trans, found := universal.FindTranslator(candidates...)
	if !found {
		return nil, false
	}
	return trans, true
}
