// Package config loads datefilter configuration from a file, the
// environment, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonwraymond/datefilter/filter"
	"github.com/jonwraymond/datefilter/intl"
	"github.com/jonwraymond/datefilter/observe"
)

// EnvPrefix prefixes every environment variable. Dots in keys become
// underscores: "filter.date_style" is read from DATEFILTER_FILTER_DATE_STYLE.
const EnvPrefix = "DATEFILTER"

// ConfigFlag names the flag that points at an explicit config file.
const ConfigFlag = "config"

// Config aggregates configuration for the CLI.
type Config struct {
	Filter  FilterConfig   `mapstructure:"filter"`
	Observe observe.Config `mapstructure:"observe"`
}

// FilterConfig holds filter options in their textual form.
type FilterConfig struct {
	Locale               string `mapstructure:"locale"`
	Timezone             string `mapstructure:"timezone"`
	Calendar             string `mapstructure:"calendar"`
	DateStyle            string `mapstructure:"date_style"`
	TimeStyle            string `mapstructure:"time_style"`
	Pattern              string `mapstructure:"pattern"`
	Lenient              bool   `mapstructure:"lenient"`
	ReformatOnHit        bool   `mapstructure:"reformat_on_hit"`
	IndependentTimeStyle bool   `mapstructure:"independent_time_style"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Observe: observe.Config{
			ServiceName: "datefilter",
			Tracing:     observe.TracingConfig{Exporter: "none", SamplePct: 1},
			Metrics:     observe.MetricsConfig{Exporter: "none"},
			Logging:     observe.LoggingConfig{Level: "info"},
		},
	}
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"locale":                 "filter.locale",
	"timezone":               "filter.timezone",
	"calendar":               "filter.calendar",
	"date-style":             "filter.date_style",
	"time-style":             "filter.time_style",
	"pattern":                "filter.pattern",
	"lenient":                "filter.lenient",
	"reformat-on-hit":        "filter.reformat_on_hit",
	"independent-time-style": "filter.independent_time_style",
	"log":                    "observe.logging.enabled",
	"log-level":              "observe.logging.level",
}

// RegisterFlags adds the configuration flags to fs. Flag defaults match
// DefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.String(ConfigFlag, "", "config file (default ./datefilter.yaml or $HOME/.config/datefilter/datefilter.yaml)")
	fs.StringP("locale", "l", "", "locale, e.g. en_US or de-DE (default from LC_ALL/LANG)")
	fs.StringP("timezone", "z", "", "IANA timezone or GMT offset (default from TZ)")
	fs.String("calendar", "", "calendar: gregorian")
	fs.StringP("date-style", "d", "", "date style: full|long|medium|short|none")
	fs.StringP("time-style", "t", "", "time style: full|long|medium|short|none")
	fs.StringP("pattern", "p", "", "custom output pattern, e.g. yyyy-MM-dd")
	fs.Bool("lenient", false, "accept input that does not match the style exactly")
	fs.Bool("reformat-on-hit", false, "reformat every value, not only the first per format")
	fs.Bool("independent-time-style", false, "use --time-style instead of --date-style for the time part")
	fs.Bool("log", def.Observe.Logging.Enabled, "write structured logs to stderr")
	fs.String("log-level", def.Observe.Logging.Level, "log level: debug|info|warn|error")
}

// Load reads configuration from the config file, the environment, and
// flags, in increasing order of precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("datefilter")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/datefilter")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
		if f := flags.Lookup(ConfigFlag); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %q: %w", name, err)
		}
	}
	return nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(append([]string{}, parts...), tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}

// FilterOptions converts c into filter options. Unknown style or calendar
// names are errors.
func (c FilterConfig) FilterOptions() (filter.Options, []filter.Option, error) {
	dateStyle, err := intl.ParseStyle(c.DateStyle)
	if err != nil {
		return filter.Options{}, nil, fmt.Errorf("config: filter.date_style: %w", err)
	}
	timeStyle, err := intl.ParseStyle(c.TimeStyle)
	if err != nil {
		return filter.Options{}, nil, fmt.Errorf("config: filter.time_style: %w", err)
	}
	calendar, err := intl.ParseCalendar(c.Calendar)
	if err != nil {
		return filter.Options{}, nil, fmt.Errorf("config: filter.calendar: %w", err)
	}

	opts := filter.NewOptionsBuilder().
		Locale(c.Locale).
		Timezone(c.Timezone).
		Calendar(calendar).
		DateStyle(dateStyle).
		TimeStyle(timeStyle).
		Pattern(c.Pattern).
		Build()

	var options []filter.Option
	if c.Lenient {
		options = append(options, filter.WithLenient())
	}
	if c.ReformatOnHit {
		options = append(options, filter.WithReformatOnHit())
	}
	if c.IndependentTimeStyle {
		options = append(options, filter.WithIndependentTimeStyle())
	}
	return opts, options, nil
}
