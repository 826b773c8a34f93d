package filter

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonwraymond/datefilter/intl"
)

// fakeFormatter parses RFC 3339 and formats as "<pattern>|2006-01-02".
type fakeFormatter struct {
	mu       sync.Mutex
	locale   string
	timezone string
	lenient  bool
	pattern  string
	failCode intl.ErrorCode
	code     intl.ErrorCode
}

func (f *fakeFormatter) Locale() string          { return f.locale }
func (f *fakeFormatter) Timezone() string        { return f.timezone }
func (f *fakeFormatter) Calendar() intl.Calendar { return intl.CalendarGregorian }
func (f *fakeFormatter) Layout() string          { return time.RFC3339 }

func (f *fakeFormatter) Pattern() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pattern
}

func (f *fakeFormatter) SetPattern(pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pattern = pattern
	return nil
}

func (f *fakeFormatter) Lenient() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lenient
}

func (f *fakeFormatter) SetLenient(lenient bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lenient = lenient
}

func (f *fakeFormatter) Parse(value string) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		f.code = intl.ParseError
		return time.Time{}, &intl.Error{Op: "parse", Code: intl.ParseError, Message: "bad", Err: err}
	}
	f.code = intl.ZeroError
	return t, nil
}

func (f *fakeFormatter) Format(t time.Time) string {
	out, _, _ := f.FormatStatus(t)
	return out
}

func (f *fakeFormatter) FormatStatus(t time.Time) (string, intl.ErrorCode, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = f.failCode
	return f.pattern + "|" + t.UTC().Format("2006-01-02"), f.code, fmt.Sprintf("%s: fake", f.code)
}

func (f *fakeFormatter) ErrorCode() intl.ErrorCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

func (f *fakeFormatter) ErrorMessage() string {
	return fmt.Sprintf("%s: fake", f.ErrorCode())
}

var _ intl.Formatter = (*fakeFormatter)(nil)

type factoryCall struct {
	locale    string
	dateStyle intl.Style
	timeStyle intl.Style
	timezone  string
	calendar  intl.Calendar
}

// fakeFactory builds fakeFormatters and records its calls.
type fakeFactory struct {
	builds     atomic.Int32
	delay      time.Duration
	failCode   intl.ErrorCode
	resolvedTZ string

	mu    sync.Mutex
	calls []factoryCall
	built []*fakeFormatter
}

func (ff *fakeFactory) New(locale string, dateStyle, timeStyle intl.Style, timezone string, calendar intl.Calendar) (intl.Formatter, error) {
	ff.builds.Add(1)
	if ff.delay > 0 {
		time.Sleep(ff.delay)
	}

	tz := timezone
	if ff.resolvedTZ != "" {
		tz = ff.resolvedTZ
	}
	f := &fakeFormatter{locale: locale, timezone: tz, lenient: true, failCode: ff.failCode}

	ff.mu.Lock()
	ff.calls = append(ff.calls, factoryCall{locale, dateStyle, timeStyle, timezone, calendar})
	ff.built = append(ff.built, f)
	ff.mu.Unlock()
	return f, nil
}

func (ff *fakeFactory) lastCall() factoryCall {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return ff.calls[len(ff.calls)-1]
}

func (ff *fakeFactory) lastBuilt() *fakeFormatter {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return ff.built[len(ff.built)-1]
}
