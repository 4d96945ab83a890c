// internal/config/config.go
//
// Runtime configuration.
// Values are resolved in order, later sources winning:
//   1. Defaults.
//   2. An optional YAML file.
//   3. Environment variables (a .env file in the working directory is loaded
//      into the environment first).

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the CLI and server.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
	Words    WordsConfig  `yaml:"words"`
	Tree     TreeConfig   `yaml:"tree"`
	Auth     AuthConfig   `yaml:"auth"`
	DBPath   string       `yaml:"db_path"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	ClientOrigin string `yaml:"client_origin"`
}

// WordsConfig names the word list files. Empty paths use the embedded lists.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}

type TreeConfig struct {
	File    string `yaml:"file"`
	Depth   int    `yaml:"depth"`
	Workers int    `yaml:"workers"`
}

type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"`
	JWTExpiresDays    int    `yaml:"jwt_expires_days"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:         "5175",
			ClientOrigin: "http://localhost:5173",
		},
		Tree: TreeConfig{
			File:    "decision-tree.json",
			Depth:   5,
			Workers: 1,
		},
		Auth: AuthConfig{
			JWTExpiresDays: 7,
		},
	}
}

// Load resolves the configuration. path may be empty, in which case
// CONFIG_FILE is consulted; a missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"LOG_LEVEL":           &c.LogLevel,
		"PORT":                &c.Server.Port,
		"CLIENT_ORIGIN":       &c.Server.ClientOrigin,
		"WORDS_ANSWERS_FILE":  &c.Words.AnswersFile,
		"WORDS_ALLOWED_FILE":  &c.Words.AllowedFile,
		"DECISION_TREE_FILE":  &c.Tree.File,
		"DB_PATH":             &c.DBPath,
		"JWT_SECRET":          &c.Auth.JWTSecret,
		"ADMIN_PASSWORD_HASH": &c.Auth.AdminPasswordHash,
	}
	for k, p := range str {
		if v := os.Getenv(k); v != "" {
			*p = v
		}
	}

	ints := map[string]*int{
		"JWT_EXPIRES_DAYS": &c.Auth.JWTExpiresDays,
		"TREE_DEPTH":       &c.Tree.Depth,
		"TREE_WORKERS":     &c.Tree.Workers,
	}
	for k, p := range ints {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*p = n
	}
	return nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.Tree.Depth < 1 {
		return fmt.Errorf("tree depth must be positive, got %d", c.Tree.Depth)
	}
	if c.Tree.Workers < 1 {
		return fmt.Errorf("tree workers must be positive, got %d", c.Tree.Workers)
	}
	if c.Auth.JWTExpiresDays < 1 {
		return fmt.Errorf("jwt expiry must be at least one day, got %d", c.Auth.JWTExpiresDays)
	}
	return nil
}

// TokenTTL is the lifetime of admin tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.JWTExpiresDays) * 24 * time.Hour
}
