package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

type ServerFlags struct {
	ServerAddr string `env:"ADDRESS"`
	LogLevel   string `env:"LOGLEVEL"`
	AuditFile  string `env:"AUDIT_FILE"`
	WebhookURL string `env:"WEBHOOK_URL"`
	SecretKey  string `env:"KEY"`
}

// ParseServerConfig собирает конфигурацию: значения по умолчанию, затем флаги, затем переменные окружения.
func ParseServerConfig(args []string) *ServerFlags {
	var cfg ServerFlags

	setDefaultServerFlag(&cfg)
	parseServerFlag(&cfg, args)
	parseServerEnv(&cfg)

	return &cfg
}

func setDefaultServerFlag(cfg *ServerFlags) {
	cfg.ServerAddr = ":8080"
	cfg.LogLevel = "info"
}

func parseServerEnv(cfg *ServerFlags) {
	err := env.Parse(cfg)
	if err != nil {
		log.Printf("Warning: failed to parse environment variables: %v", err)
	}
}

func parseServerFlag(cfg *ServerFlags, args []string) {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)

	flags.StringVarP(&cfg.ServerAddr, "address", "a", cfg.ServerAddr, "HTTP server address")
	flags.StringVarP(&cfg.LogLevel, "loglevel", "g", cfg.LogLevel, "Logger level")
	flags.StringVarP(&cfg.AuditFile, "audit-file", "f", cfg.AuditFile, "Path to the JSON lines audit file, empty to disable")
	flags.StringVarP(&cfg.WebhookURL, "webhook", "w", cfg.WebhookURL, "Webhook URL notified on every event, empty to disable")
	flags.StringVarP(&cfg.SecretKey, "key", "k", cfg.SecretKey, "Secret key for webhook signatures")

	if err := flags.Parse(args); err != nil {
		log.Printf("Error parsing command-line flags: %v", err)
	}

	if flags.NArg() > 0 {
		for i := 0; i < flags.NArg(); i++ {
			arg := flags.Arg(i)
			if len(arg) > 0 && arg[0] == '-' {
				log.Printf("Unknown flag: %s", arg)
			}
		}
	}
}
