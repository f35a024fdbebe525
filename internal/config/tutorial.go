package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

// TutorialFlags - настройки демонстраций. Флаги регистрируются во FlagSet команды,
// переменные окружения перекрывают флаги.
type TutorialFlags struct {
	LogLevel   string `env:"LOGLEVEL"`
	Bucket     string `env:"BUCKET"`
	PageSize   int32  `env:"PAGE_SIZE"`
	Rounds     int    `env:"ROUNDS"`
	UsersCount int    `env:"USERS_COUNT"`
	Seed       int64  `env:"SEED"`
}

func NewTutorialFlags() *TutorialFlags {
	return &TutorialFlags{
		LogLevel:   "info",
		PageSize:   10,
		Rounds:     2,
		UsersCount: 5,
	}
}

func (c *TutorialFlags) BindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.LogLevel, "loglevel", "g", c.LogLevel, "Logger level")
	flags.StringVarP(&c.Bucket, "bucket", "b", c.Bucket, "S3 bucket to list")
	flags.Int32VarP(&c.PageSize, "page-size", "p", c.PageSize, "Keys per ListObjectsV2 page")
	flags.IntVarP(&c.Rounds, "rounds", "r", c.Rounds, "Register/unregister rounds in the events demo")
	flags.IntVarP(&c.UsersCount, "users", "u", c.UsersCount, "Number of fake users to generate")
	flags.Int64VarP(&c.Seed, "seed", "s", c.Seed, "Faker seed, 0 for random")
}

func (c *TutorialFlags) ParseEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return nil
}
