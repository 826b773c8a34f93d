package filter

import (
	"context"
	"sync"

	"github.com/jonwraymond/datefilter/cache"
	"github.com/jonwraymond/datefilter/intl"
	"github.com/jonwraymond/datefilter/observe"
)

// DateTime parses date strings and renders them in another format.
// It is safe for concurrent use.
type DateTime struct {
	mu   sync.RWMutex
	opts Options

	name       string
	defaults   Defaults
	factory    intl.Factory
	keyer      cache.Keyer
	formatters cache.Cache[intl.Formatter]
	mw         *observe.Middleware

	lenient              bool
	reformatOnHit        bool
	independentTimeStyle bool
}

// New creates a DateTime configured with opts.
func New(opts Options, options ...Option) *DateTime {
	d := &DateTime{
		opts:       opts,
		defaults:   ProcessDefaults,
		factory:    intl.DefaultFactory,
		keyer:      cache.NewDefaultKeyer(),
		formatters: cache.NewMemoryCache[intl.Formatter](),
		mw:         observe.NopMiddleware(),
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Options returns a snapshot of the configured options. Absent values stay
// absent; use the getters for effective values.
func (d *DateTime) Options() Options {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts
}

// SetLocale sets the locale. Formatters already cached are kept.
func (d *DateTime) SetLocale(locale string) {
	d.mu.Lock()
	d.opts.Locale = locale
	d.mu.Unlock()
}

// Locale returns the configured locale, or the default locale when none is set.
func (d *DateTime) Locale() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locale()
}

// SetTimezone sets the IANA timezone or UTC offset.
func (d *DateTime) SetTimezone(timezone string) {
	d.mu.Lock()
	d.opts.Timezone = timezone
	d.mu.Unlock()
}

// Timezone returns the configured timezone, or the default timezone when none
// is set.
func (d *DateTime) Timezone() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.timezone()
}

// SetCalendar sets the calendar.
func (d *DateTime) SetCalendar(calendar intl.Calendar) {
	d.mu.Lock()
	d.opts.Calendar = calendar
	d.mu.Unlock()
}

// Calendar returns the configured calendar, or intl.CalendarGregorian.
func (d *DateTime) Calendar() intl.Calendar {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.calendar()
}

// SetDateType sets the date style.
func (d *DateTime) SetDateType(style intl.Style) {
	d.mu.Lock()
	d.opts.DateStyle = style
	d.mu.Unlock()
}

// DateType returns the configured date style.
func (d *DateTime) DateType() intl.Style {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts.DateStyle
}

// SetTimeType sets the time style.
func (d *DateTime) SetTimeType(style intl.Style) {
	d.mu.Lock()
	d.opts.TimeStyle = style
	d.mu.Unlock()
}

// TimeType returns the configured time style.
func (d *DateTime) TimeType() intl.Style {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts.TimeStyle
}

// SetPattern sets the output pattern. An empty pattern formats in styles.
func (d *DateTime) SetPattern(pattern string) {
	d.mu.Lock()
	d.opts.Pattern = pattern
	d.mu.Unlock()
}

// Pattern returns the configured output pattern.
func (d *DateTime) Pattern() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opts.Pattern
}

// Fingerprint returns the cache key of the current effective options.
func (d *DateTime) Fingerprint() (string, error) {
	return d.fingerprint(d.effective())
}

// CachedFormatters returns the number of formatters built so far.
func (d *DateTime) CachedFormatters() int {
	return d.formatters.Len()
}

// Filter transforms value. Values that are not strings are returned
// unchanged. Every failure is an *InvalidInputError.
func (d *DateTime) Filter(ctx context.Context, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	eff := d.effective()
	key, keyErr := d.fingerprint(eff)
	meta := d.meta(eff, key)

	run := d.mw.Wrap(func(ctx context.Context, meta observe.FilterMeta, _ any) (any, error) {
		if keyErr != nil {
			return nil, invalidInput(s, keyErr)
		}
		return d.transform(ctx, eff, key, meta, s)
	})
	return run(ctx, meta, s)
}

func (d *DateTime) transform(ctx context.Context, eff Options, key string, meta observe.FilterMeta, value string) (any, error) {
	var out string
	f, created, err := d.formatters.GetOrCreate(ctx, key, func(ctx context.Context) (intl.Formatter, error) {
		f, err := d.build(ctx, eff, meta)
		if err != nil {
			return nil, err
		}
		if err := f.SetPattern(eff.Pattern); err != nil {
			return nil, err
		}
		out, err = render(f, value)
		if err != nil {
			return nil, err
		}
		return f, nil
	})

	d.mw.Metrics().RecordCacheLookup(ctx, meta, err == nil && !created)
	if err != nil {
		return nil, invalidInput(value, err)
	}
	if created {
		return out, nil
	}

	if !d.reformatOnHit {
		return value, nil
	}
	out, err = render(f, value)
	if err != nil {
		return nil, invalidInput(value, err)
	}
	return out, nil
}

// build constructs a strict formatter and records the timezone and calendar
// it resolved.
func (d *DateTime) build(ctx context.Context, eff Options, meta observe.FilterMeta) (intl.Formatter, error) {
	f, err := d.factory.New(eff.Locale, eff.DateStyle, eff.TimeStyle, eff.Timezone, intl.CalendarGregorian)
	if err != nil {
		return nil, err
	}
	f.SetLenient(d.lenient)

	d.mu.Lock()
	d.opts.Timezone = f.Timezone()
	d.opts.Calendar = f.Calendar()
	d.mu.Unlock()

	d.mw.Logger().WithFilter(meta).Debug(ctx, "formatter built",
		observe.Field{Key: "resolved_locale", Value: f.Locale()},
		observe.Field{Key: "resolved_timezone", Value: f.Timezone()},
		observe.Field{Key: "layout", Value: f.Layout()},
	)
	return f, nil
}

// render parses value and formats the result, failing when the formatter
// reports a failure status afterwards.
func render(f intl.Formatter, value string) (string, error) {
	t, err := f.Parse(value)
	if err != nil {
		return "", err
	}
	out, code, msg := f.FormatStatus(t)
	if intl.IsFailure(code) {
		return "", &intl.Error{Op: "format", Code: code, Message: msg}
	}
	return out, nil
}

// effective returns the options a Filter call uses.
func (d *DateTime) effective() Options {
	d.mu.RLock()
	defer d.mu.RUnlock()

	eff := Options{
		Locale:    d.locale(),
		Timezone:  d.timezone(),
		Calendar:  d.calendar(),
		DateStyle: d.opts.DateStyle,
		TimeStyle: d.opts.DateStyle,
		Pattern:   d.opts.Pattern,
	}
	if d.independentTimeStyle {
		eff.TimeStyle = d.opts.TimeStyle
	}
	return eff
}

func (d *DateTime) fingerprint(eff Options) (string, error) {
	return d.keyer.Key(
		eff.DateStyle.String(),
		eff.TimeStyle.String(),
		eff.Locale,
		eff.Timezone,
		eff.Calendar.String(),
		eff.Pattern,
	)
}

func (d *DateTime) meta(eff Options, key string) observe.FilterMeta {
	return observe.FilterMeta{
		Name:        d.name,
		Locale:      eff.Locale,
		Timezone:    eff.Timezone,
		Calendar:    eff.Calendar.String(),
		DateStyle:   eff.DateStyle.String(),
		TimeStyle:   eff.TimeStyle.String(),
		Pattern:     eff.Pattern,
		Fingerprint: key,
	}
}

// locale, timezone and calendar must be called with mu held.

func (d *DateTime) locale() string {
	if d.opts.Locale != "" {
		return d.opts.Locale
	}
	return d.defaults.Locale()
}

func (d *DateTime) timezone() string {
	if d.opts.Timezone != "" {
		return d.opts.Timezone
	}
	return d.defaults.Timezone()
}

func (d *DateTime) calendar() intl.Calendar {
	if d.opts.Calendar != intl.CalendarUnspecified {
		return d.opts.Calendar
	}
	return intl.CalendarGregorian
}
