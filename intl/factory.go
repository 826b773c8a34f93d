package intl

// Factory constructs formatters.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: construction failures should be *Error values.
type Factory interface {
	New(locale string, dateStyle, timeStyle Style, timezone string, calendar Calendar) (Formatter, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(locale string, dateStyle, timeStyle Style, timezone string, calendar Calendar) (Formatter, error)

func (fn FactoryFunc) New(locale string, dateStyle, timeStyle Style, timezone string, calendar Calendar) (Formatter, error) {
	return fn(locale, dateStyle, timeStyle, timezone, calendar)
}

// DefaultFactory builds DateFormatters.
var DefaultFactory Factory = FactoryFunc(func(locale string, dateStyle, timeStyle Style, timezone string, calendar Calendar) (Formatter, error) {
	f, err := NewDateFormatter(locale, dateStyle, timeStyle, timezone, calendar)
	if err != nil {
		return nil, err
	}
	return f, nil
})
