// Package intl provides locale-aware date formatters.
//
// A DateFormatter is built from a locale, a date style, a time style, a
// timezone and a calendar. It parses text in the locale's style grammar and
// renders instants either in that grammar or in a custom ICU-style pattern.
// Locale data comes from github.com/goodsign/monday, locale matching from
// golang.org/x/text/language, pattern translation from
// github.com/vjeantet/jodaTime and lenient parsing from
// github.com/araddon/dateparse.
//
// Only the Gregorian calendar is supported.
package intl
