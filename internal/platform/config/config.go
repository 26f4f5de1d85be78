package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FISCO_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	environment := os.Getenv("FISCO_ENV")
	if environment == "" {
		environment = "dev"
	}

	return Server{
		Addr:        addr,
		Environment: environment,
	}
}
