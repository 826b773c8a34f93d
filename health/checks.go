package health

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/datefilter/intl"
)

// referenceTime is formatted and parsed back by the round-trip check.
var referenceTime = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

// TimezoneChecker verifies that each zone loads without falling back.
func TimezoneChecker(zones ...string) Checker {
	return NewCheckerFunc("timezones", func(ctx context.Context) Result {
		var missing []string
		for _, z := range zones {
			if ctx.Err() != nil {
				return Unhealthy("cancelled", ctx.Err())
			}
			if _, _, ok := intl.ResolveTimezone(z); !ok {
				missing = append(missing, z)
			}
		}
		if len(missing) > 0 {
			return Unhealthy("zones not found: "+strings.Join(missing, ", "), ErrCheckFailed)
		}
		return Healthy(fmt.Sprintf("%d zones loaded", len(zones)))
	})
}

// LocaleChecker verifies that the locale tables are present and that each
// locale resolves. Locales resolving to a different locale degrade.
func LocaleChecker(locales ...string) Checker {
	return NewCheckerFunc("locales", func(ctx context.Context) Result {
		supported := intl.Locales()
		if len(supported) == 0 {
			return Unhealthy("no locales available", ErrCheckFailed)
		}

		var fallbacks []string
		for _, l := range locales {
			if _, ok := intl.ResolveLocale(l); !ok {
				fallbacks = append(fallbacks, l)
			}
		}
		if len(fallbacks) > 0 {
			return Degraded("locales falling back to " + string(intl.FallbackLocale) + ": " + strings.Join(fallbacks, ", "))
		}
		return Healthy(fmt.Sprintf("%d locales available", len(supported)))
	})
}

// RoundTripChecker formats a reference instant in locale and parses it back
// with a strict formatter from factory.
func RoundTripChecker(factory intl.Factory, locale string) Checker {
	return NewCheckerFunc("roundtrip", func(ctx context.Context) Result {
		f, err := factory.New(locale, intl.StyleShort, intl.StyleShort, "UTC", intl.CalendarGregorian)
		if err != nil {
			return Unhealthy("formatter construction failed", err)
		}
		f.SetLenient(false)

		text := f.Format(referenceTime)
		got, err := f.Parse(text)
		if err != nil {
			return Unhealthy(fmt.Sprintf("cannot parse own output %q", text), err)
		}
		if !got.Equal(referenceTime) {
			return Unhealthy(fmt.Sprintf("round trip of %q gave %s", text, got.Format(time.RFC3339)), ErrCheckFailed)
		}
		return Healthy(fmt.Sprintf("%s: %q", f.Locale(), text))
	})
}

// DefaultCheckers returns the checks run by the datefilter check command.
func DefaultCheckers(factory intl.Factory, locale string) []Checker {
	return []Checker{
		TimezoneChecker("UTC", "Europe/Berlin", "America/New_York", "Asia/Tokyo"),
		LocaleChecker(locale),
		RoundTripChecker(factory, locale),
	}
}
