package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Astemirdum/circulation-service/internal/model"
	"github.com/Astemirdum/circulation-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type Report struct {
	Path string `yaml:"path" envconfig:"CIRC_REPORT_PATH"`
}

type Config struct {
	// BorrowLimit is how many items one borrower may hold at once.
	BorrowLimit int        `yaml:"borrowLimit" envconfig:"CIRC_BORROW_LIMIT"`
	Report      Report     `yaml:"report"`
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config := Config{
			BorrowLimit: model.DefaultBorrowLimit,
			Report:      Report{Path: "circulation_report.pdf"},
		}
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithBorrowLimit(n int) Option {
	return func(c *Config) {
		c.BorrowLimit = n
	}
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
