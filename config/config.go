package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the inkpaste service.
type Config struct {
	Port        int    `yaml:"port" json:"port"`
	BaseURL     string `yaml:"base_url" json:"base_url"`
	StorageType string `yaml:"storage_type" json:"storage_type"`

	// Postgres connection options, combined into a DSN by PostgresDSN.
	DBUser     string `yaml:"db_user" json:"db_user"`
	DBPassword string `yaml:"db_password" json:"-"`
	DBHost     string `yaml:"db_host" json:"db_host"`
	DBPort     int    `yaml:"db_port" json:"db_port"`
	DBName     string `yaml:"db_name" json:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode" json:"db_sslmode"`

	MongoURI string `yaml:"mongo_uri" json:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db" json:"mongo_db"`

	RedisAddr     string `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string `yaml:"redis_password" json:"-"`
	RedisDB       int    `yaml:"redis_db" json:"redis_db"`

	DynamoTable string `yaml:"dynamo_table" json:"dynamo_table"`
	AWSRegion   string `yaml:"aws_region" json:"aws_region"`

	Version    string `yaml:"-" json:"version"`
	BuildTime  string `yaml:"-" json:"build_time"`
	CommitHash string `yaml:"-" json:"commit_hash"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Port:        8080,
		BaseURL:     "",
		StorageType: "postgres",
		DBUser:      "inkpaste",
		DBPassword:  "",
		DBHost:      "localhost",
		DBPort:      5432,
		DBName:      "inkpaste",
		DBSSLMode:   "require",
		MongoURI:    "mongodb://localhost:27017",
		MongoDB:     "inkpaste",
		RedisAddr:   "localhost:6379",
		RedisDB:     0,
		DynamoTable: "inkpaste-pastes",
		AWSRegion:   "us-east-1",
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file, CLI
// flags and environment variables, in that order of precedence (later
// sources win).
func LoadConfig() *Config {
	cfg := Default()

	var configFile string
	flag.StringVar(&configFile, "config", "", "Path to YAML config file")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	flag.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "Base URL for paste links")
	flag.StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend (postgres, mongodb, redis, dynamodb, memory)")
	flag.Parse()

	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("INKPASTE_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Port = port
		}
	}
	if val := os.Getenv("INKPASTE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("INKPASTE_STORAGE"); val != "" {
		c.StorageType = val
	}

	if val := os.Getenv("INKPASTE_DB_USER"); val != "" {
		c.DBUser = val
	}
	if val := os.Getenv("INKPASTE_DB_PASSWORD"); val != "" {
		c.DBPassword = val
	}
	if val := os.Getenv("INKPASTE_DB_HOST"); val != "" {
		c.DBHost = val
	}
	if val := os.Getenv("INKPASTE_DB_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.DBPort = port
		}
	}
	if val := os.Getenv("INKPASTE_DB_NAME"); val != "" {
		c.DBName = val
	}
	if val := os.Getenv("INKPASTE_DB_SSLMODE"); val != "" {
		c.DBSSLMode = val
	}

	if val := os.Getenv("INKPASTE_MONGO_URI"); val != "" {
		c.MongoURI = val
	}
	if val := os.Getenv("INKPASTE_MONGO_DB"); val != "" {
		c.MongoDB = val
	}

	if val := os.Getenv("INKPASTE_REDIS_ADDR"); val != "" {
		c.RedisAddr = val
	}
	if val := os.Getenv("INKPASTE_REDIS_PASSWORD"); val != "" {
		c.RedisPassword = val
	}
	if val := os.Getenv("INKPASTE_REDIS_DB"); val != "" {
		if db, err := strconv.Atoi(val); err == nil {
			c.RedisDB = db
		}
	}

	if val := os.Getenv("INKPASTE_DYNAMO_TABLE"); val != "" {
		c.DynamoTable = val
	}
	if val := os.Getenv("INKPASTE_AWS_REGION"); val != "" {
		c.AWSRegion = val
	}
}

// PostgresDSN combines the enumerated database options into a connection
// string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
