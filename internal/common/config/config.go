package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Presale struct {
		// ContractAddress is this deployment's own identity, used as the
		// mint recipient in outbound instructions.
		ContractAddress string `env:"PRESALE_CONTRACT_ADDRESS,required"`

		// TONAddresses switches identity validation to TON address format.
		// When false any non-empty identity is accepted, which is what the
		// local development setup uses.
		TONAddresses bool `env:"PRESALE_TON_ADDRESSES" envDefault:"true"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional; in production the variables are set directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
