package config

import (
	"fmt"
)

const defaultStaticDir = "public"

type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	StaticDir      string
	AllowedOrigins []string
}

func NewConfig(serverAddr, databaseDSN, staticDir string, allowedOrigins []string) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}
	if staticDir == "" {
		staticDir = defaultStaticDir
	}

	return &Config{
		ServerAddr:     serverAddr,
		DatabaseDSN:    databaseDSN,
		StaticDir:      staticDir,
		AllowedOrigins: allowedOrigins,
	}, nil
}
