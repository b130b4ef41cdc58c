package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrewboy/see-me/adapters/sms/seeme"
	"github.com/andrewboy/see-me/seemeTools"
)

const envPrefix = "SEEME"

type confSt struct {
	ApiKey    string        `mapstructure:"api_key"`
	Format    string        `mapstructure:"format"`
	Method    string        `mapstructure:"method"`
	LogFile   string        `mapstructure:"log_file"`
	BaseUrl   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LogLevel  string        `mapstructure:"log_level"`
	Debug     bool          `mapstructure:"debug"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Workers   int           `mapstructure:"workers"`
}

var defaultConf = confSt{
	Format:    seeme.FormatJson,
	Method:    seeme.MethodCurl,
	BaseUrl:   seeme.ApiUrl,
	Timeout:   30 * time.Second,
	LogLevel:  "info",
	RateLimit: 5,
	Workers:   4,
}

type sendFlagsSt struct {
	message     string
	sender      string
	reference   string
	callback    string
	callbackUrl string
}

func newFlagSet(sendFlags *sendFlagsSt) *pflag.FlagSet {
	fs := pflag.NewFlagSet("seeme", pflag.ContinueOnError)

	fs.String("config", "", "config file (yaml, json, toml or env)")
	fs.String("api-key", "", "gateway API key")
	fs.String("format", defaultConf.Format, "response format: json, xml or string")
	fs.String("method", defaultConf.Method, "fetch method: curl or file_get_contents")
	fs.String("log-file", "", "append call diagnostics to this file")
	fs.String("base-url", defaultConf.BaseUrl, "gateway url")
	fs.Duration("timeout", defaultConf.Timeout, "request timeout")
	fs.String("log-level", defaultConf.LogLevel, "log level")
	fs.Bool("debug", false, "development logging")
	fs.Float64("rate-limit", defaultConf.RateLimit, "max requests per second, 0 disables the limit")
	fs.Int("workers", defaultConf.Workers, "parallel requests when sending to many numbers")

	fs.StringVarP(&sendFlags.message, "message", "m", "", "message text (send)")
	fs.StringVar(&sendFlags.sender, "sender", "", "sender id (send)")
	fs.StringVar(&sendFlags.reference, "reference", "", "numeric reference (send)")
	fs.StringVar(&sendFlags.callback, "callback", "", `delivery callback codes, e.g. "1,2,10" or "all" (send)`)
	fs.StringVar(&sendFlags.callbackUrl, "callback-url", "", "delivery callback url (send)")

	return fs
}

// loadConf resolves the config from defaults, the config file, SEEME_* env vars and flags,
// later sources win.
func loadConf(fs *pflag.FlagSet) (*confSt, error) {
	var err error

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	seemeTools.SetViperDefaultsFromObj(defaultConf)

	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if _, ok := viperKeys[key]; ok {
			_ = viper.BindPFlag(key, f)
		}
	})

	if path, _ := fs.GetString("config"); path != "" {
		viper.SetConfigFile(path)

		err = viper.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	conf := &confSt{}

	err = viper.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

var viperKeys = map[string]struct{}{
	"api_key":    {},
	"format":     {},
	"method":     {},
	"log_file":   {},
	"base_url":   {},
	"timeout":    {},
	"log_level":  {},
	"debug":      {},
	"rate_limit": {},
	"workers":    {},
}
