package filter

import (
	"github.com/jonwraymond/datefilter/cache"
	"github.com/jonwraymond/datefilter/intl"
	"github.com/jonwraymond/datefilter/observe"
)

// Options is the formatting configuration of a DateTime. Zero values mean
// absent: empty strings, intl.CalendarUnspecified and intl.StyleUnset.
type Options struct {
	Locale    string
	Timezone  string
	Calendar  intl.Calendar
	DateStyle intl.Style
	TimeStyle intl.Style
	// Pattern is a custom ICU output pattern. Empty means the style layout.
	Pattern string
}

// OptionsBuilder builds Options fluently.
type OptionsBuilder struct {
	opts Options
}

// NewOptionsBuilder returns a builder with all options absent.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{}
}

// Locale sets the locale, e.g. "de_DE".
func (b *OptionsBuilder) Locale(locale string) *OptionsBuilder {
	b.opts.Locale = locale
	return b
}

// Timezone sets the IANA timezone or UTC offset.
func (b *OptionsBuilder) Timezone(timezone string) *OptionsBuilder {
	b.opts.Timezone = timezone
	return b
}

// Calendar sets the calendar.
func (b *OptionsBuilder) Calendar(calendar intl.Calendar) *OptionsBuilder {
	b.opts.Calendar = calendar
	return b
}

// DateStyle sets the date style.
func (b *OptionsBuilder) DateStyle(style intl.Style) *OptionsBuilder {
	b.opts.DateStyle = style
	return b
}

// TimeStyle sets the time style.
func (b *OptionsBuilder) TimeStyle(style intl.Style) *OptionsBuilder {
	b.opts.TimeStyle = style
	return b
}

// Pattern sets the custom output pattern.
func (b *OptionsBuilder) Pattern(pattern string) *OptionsBuilder {
	b.opts.Pattern = pattern
	return b
}

// Build returns the accumulated Options. The builder may be reused.
func (b *OptionsBuilder) Build() Options {
	return b.opts
}

// Defaults supplies the locale and timezone used when a DateTime has none.
// It is consulted on every call, so changes are seen by fingerprints that
// are not cached yet.
type Defaults interface {
	Locale() string
	Timezone() string
}

type processDefaults struct{}

func (processDefaults) Locale() string   { return intl.DefaultLocale() }
func (processDefaults) Timezone() string { return intl.DefaultTimezone() }

// ProcessDefaults reads intl.DefaultLocale and intl.DefaultTimezone.
var ProcessDefaults Defaults = processDefaults{}

// StaticDefaults is a fixed Defaults.
type StaticDefaults struct {
	LocaleID   string
	TimezoneID string
}

// Locale returns LocaleID.
func (d StaticDefaults) Locale() string   { return d.LocaleID }
// Timezone returns TimezoneID.
func (d StaticDefaults) Timezone() string { return d.TimezoneID }

// Option configures a DateTime.
type Option func(*DateTime)

// WithName sets the name reported in telemetry.
func WithName(name string) Option {
	return func(d *DateTime) { d.name = name }
}

// WithDefaults replaces ProcessDefaults.
func WithDefaults(defaults Defaults) Option {
	return func(d *DateTime) {
		if defaults != nil {
			d.defaults = defaults
		}
	}
}

// WithFactory replaces intl.DefaultFactory.
func WithFactory(factory intl.Factory) Option {
	return func(d *DateTime) {
		if factory != nil {
			d.factory = factory
		}
	}
}

// WithKeyer replaces the fingerprint function.
func WithKeyer(keyer cache.Keyer) Option {
	return func(d *DateTime) {
		if keyer != nil {
			d.keyer = keyer
		}
	}
}

// WithCache replaces the formatter store. The store must not be shared
// between filters with different Factory or lenient settings.
func WithCache(c cache.Cache[intl.Formatter]) Option {
	return func(d *DateTime) {
		if c != nil {
			d.formatters = c
		}
	}
}

// WithMiddleware instruments every Filter call.
func WithMiddleware(mw *observe.Middleware) Option {
	return func(d *DateTime) {
		if mw != nil {
			d.mw = mw
		}
	}
}

// WithLenient builds formatters in lenient mode instead of strict mode.
func WithLenient() Option {
	return func(d *DateTime) { d.lenient = true }
}

// WithReformatOnHit makes cache hits parse and format the value with the
// cached formatter instead of returning it unchanged.
func WithReformatOnHit() Option {
	return func(d *DateTime) { d.reformatOnHit = true }
}

// WithIndependentTimeStyle uses TimeType as the effective time style instead
// of DateType.
func WithIndependentTimeStyle() Option {
	return func(d *DateTime) { d.independentTimeStyle = true }
}
