package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/agent"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

// Config holds the application settings.
type Config struct {
	Currency           string
	RecurringCapacity  int
	HighSpendThreshold decimal.Decimal
	LogLevel           zapcore.Level
	Style              string
	Model              string
	APIKey             string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Currency:           budget.DefaultCurrency,
		RecurringCapacity:  budget.DefaultRecurringCapacity,
		HighSpendThreshold: budget.DefaultHighSpendThreshold,
		LogLevel:           zapcore.WarnLevel,
		Style:              "auto",
		Model:              agent.DefaultModel,
	}
}

// SessionOptions returns the options of a new session.
func (c Config) SessionOptions() budget.Options {
	return budget.Options{Currency: c.Currency, RecurringCapacity: c.RecurringCapacity}
}

// AssistantEnabled reports whether the assistant can be used.
func (c Config) AssistantEnabled() bool { return c.APIKey != "" }

// setting binds an environment variable, and optionally a global flag, to a Config field.
type setting struct {
	env   string
	flag  string
	usage string
	apply func(c *Config, value string) error
}

var styles = []string{"auto", "dark", "light", "notty", "raw"}

var settings = []setting{
	{"MFB_CURRENCY", "currency", "home currency ISO 4217 code (default INR)", func(c *Config, v string) error {
		v = strings.ToUpper(strings.TrimSpace(v))
		if !budget.KnownCurrency(v) {
			return fmt.Errorf("%q: %w", v, budget.ErrUnknownCurrency)
		}
		c.Currency = v
		return nil
	}},
	{"MFB_RECURRING_CAPACITY", "recurring-capacity", "number of recurring expenses kept (default 10)", func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("%d must be greater than zero", n)
		}
		c.RecurringCapacity = n
		return nil
	}},
	{"MFB_HIGH_SPEND_THRESHOLD", "threshold", "default cost-cutting threshold (default 5000)", func(c *Config, v string) error {
		d, err := parseAmount(v)
		if err != nil {
			return err
		}
		if d.IsNegative() {
			return fmt.Errorf("%s must not be negative", d)
		}
		c.HighSpendThreshold = d
		return nil
	}},
	{"MFB_LOG_LEVEL", "log-level", "log level: debug, info, warn or error (default warn)", func(c *Config, v string) error {
		return c.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v)))
	}},
	{"MFB_STYLE", "style", "output style: auto, dark, light, notty or raw (default auto)", func(c *Config, v string) error {
		v = strings.ToLower(strings.TrimSpace(v))
		for _, s := range styles {
			if s == v {
				c.Style = v
				return nil
			}
		}
		return fmt.Errorf("unknown style %q, want one of %s", v, strings.Join(styles, ", "))
	}},
	{"MFB_MODEL", "model", "model used by the assistant (default " + agent.DefaultModel + ")", func(c *Config, v string) error {
		c.Model = strings.TrimSpace(v)
		return nil
	}},
	{"GEMINI_API_KEY", "", "", func(c *Config, v string) error {
		c.APIKey = strings.TrimSpace(v)
		return nil
	}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// globalFlags holds the values of the global flags, by flag name.
var globalFlags = map[string]*string{}

func init() {
	for _, s := range settings {
		if s.flag != "" {
			globalFlags[s.flag] = flag.String(s.flag, "", s.usage)
		}
	}
}

// LoadConfig reads the settings from the .env file in the working directory,
// the environment and the global flags, in increasing precedence.
func LoadConfig() (Config, error) {
	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot read .env file: %w", err)
	}
	flags := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		if _, ok := globalFlags[f.Name]; ok {
			flags[f.Name] = f.Value.String()
		}
	})
	return parseConfig(flags, os.LookupEnv, dotenv)
}

// parseConfig applies, over the defaults, the .env values, then the
// environment, then the flags.
func parseConfig(flags map[string]string, lookupEnv func(string) (string, bool), dotenv map[string]string) (Config, error) {
	c := DefaultConfig()
	for _, s := range settings {
		value, ok := dotenv[s.env]
		if v, found := lookupEnv(s.env); found {
			value, ok = v, true
		}
		if v, found := flags[s.flag]; found {
			value, ok = v, true
		}
		// an empty value keeps the default.
		if !ok || value == "" {
			continue
		}
		if err := s.apply(&c, value); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", s.env, err)
		}
	}
	return c, nil
}

// Environ returns the settings as environment variables, to pass them to extensions.
func (c Config) Environ() []string {
	return []string{
		"MFB_CURRENCY=" + c.Currency,
		"MFB_RECURRING_CAPACITY=" + strconv.Itoa(c.RecurringCapacity),
		"MFB_HIGH_SPEND_THRESHOLD=" + c.HighSpendThreshold.String(),
		"MFB_LOG_LEVEL=" + c.LogLevel.String(),
		"MFB_STYLE=" + c.Style,
		"MFB_MODEL=" + c.Model,
	}
}
