package intl

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// FallbackLocale is used when a requested locale cannot be matched.
const FallbackLocale = monday.LocaleEnUS

var (
	localesOnce sync.Once
	locales     []monday.Locale
	matcher     language.Matcher
)

func loadLocales() {
	locales = []monday.Locale{FallbackLocale}
	for _, l := range monday.ListLocales() {
		if l != FallbackLocale {
			locales = append(locales, l)
		}
	}

	// The first tag is the matcher's fallback.
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.Make(strings.ReplaceAll(string(l), "_", "-"))
	}
	matcher = language.NewMatcher(tags)
}

// Locales returns the identifiers of all supported locales, sorted.
func Locales() []string {
	localesOnce.Do(loadLocales)

	out := make([]string, len(locales))
	for i, l := range locales {
		out[i] = string(l)
	}
	sort.Strings(out)
	return out
}

// ResolveLocale maps a POSIX or BCP 47 locale identifier to the closest
// supported locale. ok is false when nothing matched and FallbackLocale was
// chosen.
func ResolveLocale(id string) (resolved monday.Locale, ok bool) {
	localesOnce.Do(loadLocales)

	norm := normalizeLocaleID(id)
	if norm == "" {
		return FallbackLocale, false
	}

	tag, err := language.Parse(norm)
	if err != nil {
		return FallbackLocale, false
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(locales) {
		return FallbackLocale, false
	}
	return locales[idx], true
}

// normalizeLocaleID strips POSIX encoding and modifier suffixes
// ("de_DE.UTF-8@euro") and converts underscores to hyphens.
func normalizeLocaleID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	if id == "C" || id == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(id, "_", "-")
}

var defaults struct {
	mu       sync.RWMutex
	locale   string
	timezone string
}

// DefaultLocale returns the process-wide default locale: the value set with
// SetDefaultLocale, else the first of LC_ALL, LC_TIME and LANG that names a
// locale, else FallbackLocale.
func DefaultLocale() string {
	defaults.mu.RLock()
	l := defaults.locale
	defaults.mu.RUnlock()
	if l != "" {
		return l
	}

	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(env); normalizeLocaleID(v) != "" {
			if i := strings.IndexAny(v, ".@"); i >= 0 {
				v = v[:i]
			}
			return v
		}
	}
	return string(FallbackLocale)
}

// SetDefaultLocale overrides the process-wide default locale. An empty id
// restores the environment-derived default.
func SetDefaultLocale(id string) {
	defaults.mu.Lock()
	defaults.locale = strings.TrimSpace(id)
	defaults.mu.Unlock()
}
