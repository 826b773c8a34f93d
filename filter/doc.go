// Package filter provides DateTime, a filter that parses a date string with
// one locale-aware format and renders it with another.
//
// A DateTime holds formatting options (locale, timezone, calendar, date and
// time styles, custom output pattern). Each call to Filter fingerprints the
// effective options and looks up a formatter built for them; formatters are
// built once per fingerprint and never rebuilt.
//
// Two legacy behaviors are kept by default and can be switched off:
//
//   - The effective time style is the date style. Use WithIndependentTimeStyle
//     to honor TimeType.
//   - A call whose fingerprint is already cached returns its input unchanged.
//     Use WithReformatOnHit to parse and format with the cached formatter.
//
// Building a formatter records the timezone and calendar it resolved back
// into the filter's options. Subsequent calls fingerprint the recorded
// values.
package filter
