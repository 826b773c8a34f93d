package intl_test

import (
	"fmt"

	"github.com/jonwraymond/datefilter/intl"
)

func ExampleNewDateFormatter() {
	f, err := intl.NewDateFormatter("en_US", intl.StyleShort, intl.StyleShort, "UTC", intl.CalendarGregorian)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	f.SetLenient(false)

	ts, err := f.Parse("3/15/24, 2:30 PM")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	_ = f.SetPattern("yyyy-MM-dd HH:mm")
	fmt.Println(f.Format(ts))
	// Output:
	// 2024-03-15 14:30
}

func ExampleResolveTimezone() {
	_, id, ok := intl.ResolveTimezone("Not/AZone")
	fmt.Println(id, ok)

	_, id, ok = intl.ResolveTimezone("GMT+2")
	fmt.Println(id, ok)
	// Output:
	// UTC false
	// GMT+02:00 true
}
