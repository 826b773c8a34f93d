package intl

import "github.com/goodsign/monday"

// styleLayouts holds Go reference-time layouts for one locale, indexed by
// StyleFull..StyleShort.
type styleLayouts struct {
	date [4]string
	time [4]string
	sep  string
}

// noneLayout is used when both the date and the time style are StyleNone.
const noneLayout = "20060102 03:04 PM"

var (
	time12h = [4]string{"3:04:05 PM MST", "3:04:05 PM MST", "3:04:05 PM", "3:04 PM"}
	time24h = [4]string{"15:04:05 MST", "15:04:05 MST", "15:04:05", "15:04"}
)

var builtinLayouts = map[monday.Locale]styleLayouts{
	monday.LocaleEnUS: {
		date: [4]string{"Monday, January 2, 2006", "January 2, 2006", "Jan 2, 2006", "1/2/06"},
		time: time12h,
		sep:  ", ",
	},
	monday.LocaleEnGB: {
		date: [4]string{"Monday, 2 January 2006", "2 January 2006", "2 Jan 2006", "02/01/2006"},
		time: time24h,
		sep:  ", ",
	},
	monday.LocaleDeDE: {
		date: [4]string{"Monday, 2. January 2006", "2. January 2006", "02.01.2006", "02.01.06"},
		time: time24h,
		sep:  ", ",
	},
	monday.LocaleFrFR: {
		date: [4]string{"Monday 2 January 2006", "2 January 2006", "2 Jan 2006", "02/01/2006"},
		time: time24h,
		sep:  " ",
	},
}

// layoutsFor returns the style layouts of locale. Locales without a built-in
// table take their date layouts from monday and use 24-hour times.
func layoutsFor(locale monday.Locale) styleLayouts {
	if l, ok := builtinLayouts[locale]; ok {
		return l
	}

	l := styleLayouts{
		date: builtinLayouts[FallbackLocale].date,
		time: time24h,
		sep:  " ",
	}
	for i, m := range []map[monday.Locale]string{
		monday.FullFormatsByLocale,
		monday.LongFormatsByLocale,
		monday.MediumFormatsByLocale,
		monday.ShortFormatsByLocale,
	} {
		if layout, ok := m[locale]; ok && layout != "" {
			l.date[i] = layout
		}
	}
	return l
}

func (l styleLayouts) dateLayout(s Style) string {
	if s == StyleNone {
		return ""
	}
	return l.date[s-StyleFull]
}

func (l styleLayouts) timeLayout(s Style) string {
	if s == StyleNone {
		return ""
	}
	return l.time[s-StyleFull]
}

// styleLayout combines the date and time layouts of locale. Both styles must
// be valid and resolved.
func styleLayout(locale monday.Locale, dateStyle, timeStyle Style) string {
	l := layoutsFor(locale)
	d, t := l.dateLayout(dateStyle), l.timeLayout(timeStyle)

	switch {
	case d == "" && t == "":
		return noneLayout
	case t == "":
		return d
	case d == "":
		return t
	}
	return d + l.sep + t
}
