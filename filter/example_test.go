package filter_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/datefilter/filter"
	"github.com/jonwraymond/datefilter/intl"
)

func ExampleDateTime_Filter() {
	opts := filter.NewOptionsBuilder().
		Locale("en_US").
		Timezone("UTC").
		DateStyle(intl.StyleShort).
		Pattern("yyyy-MM-dd HH:mm").
		Build()

	f := filter.New(opts)
	out, err := f.Filter(context.Background(), "3/15/24, 2:30 PM")
	fmt.Println(out, err)

	// Non-strings pass through untouched.
	out, err = f.Filter(context.Background(), 42)
	fmt.Println(out, err)
	// Output:
	// 2024-03-15 14:30 <nil>
	// 42 <nil>
}

func ExampleDateTime_Filter_cacheHit() {
	opts := filter.NewOptionsBuilder().
		Locale("en_US").
		Timezone("UTC").
		DateStyle(intl.StyleShort).
		Pattern("yyyy-MM-dd").
		Build()

	legacy := filter.New(opts)
	_, _ = legacy.Filter(context.Background(), "3/15/24, 2:30 PM")
	out, _ := legacy.Filter(context.Background(), "3/16/24, 9:00 AM")
	fmt.Println(out)

	reformat := filter.New(opts, filter.WithReformatOnHit())
	_, _ = reformat.Filter(context.Background(), "3/15/24, 2:30 PM")
	out, _ = reformat.Filter(context.Background(), "3/16/24, 9:00 AM")
	fmt.Println(out)
	// Output:
	// 3/16/24, 9:00 AM
	// 2024-03-16
}

func ExampleDateTime_Filter_invalidInput() {
	f := filter.New(filter.NewOptionsBuilder().
		Locale("en_US").
		Timezone("UTC").
		DateStyle(intl.StyleShort).
		Build())

	_, err := f.Filter(context.Background(), "2024-03-15")
	fmt.Println(errors.Is(err, filter.ErrInvalidInput))

	var iie *filter.InvalidInputError
	if errors.As(err, &iie) {
		fmt.Println(iie.Value)
	}
	// Output:
	// true
	// 2024-03-15
}

func ExampleDateTime_Timezone_resolved() {
	f := filter.New(filter.NewOptionsBuilder().
		Locale("en_US").
		Timezone("Nowhere/Special").
		DateStyle(intl.StyleShort).
		Build())

	fmt.Println(f.Timezone())
	_, _ = f.Filter(context.Background(), "3/15/24, 2:30 PM")
	fmt.Println(f.Timezone())
	// Output:
	// Nowhere/Special
	// UTC
}
