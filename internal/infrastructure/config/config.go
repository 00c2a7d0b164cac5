package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"assessoria_licitacoes/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMySQL    = "mysql"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	Minio    MinioConfig    `yaml:"minio"`
	Auth     AuthConfig     `yaml:"auth"`
	Company  CompanyConfig  `yaml:"company"`
	Payments PaymentsConfig `yaml:"payments"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig selects where licitações and débitos live. Driver is one of dynamodb, mysql or sqlite.
type StoreConfig struct {
	Driver     string `yaml:"driver"`
	MySQLDSN   string `yaml:"mysql_dsn"`
	SQLitePath string `yaml:"sqlite_path"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	Region     string `yaml:"region"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
	// Disabled turns off document emission entirely.
	Disabled bool `yaml:"disabled"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type CompanyConfig struct {
	RazaoSocial string `yaml:"razao_social"`
	CNPJ        string `yaml:"cnpj"`
	Endereco    string `yaml:"endereco"`
	Cidade      string `yaml:"cidade"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `yaml:"mercadopago_access_token"`
	Mock                   bool   `yaml:"mock"`
}

// Load builds the configuration. When path is not empty the YAML file is read first; environment
// variables always win over file values, and defaults fill whatever is still empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot start the service.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDynamoDB, StoreSQLite:
	case StoreMySQL:
		if c.Store.MySQLDSN == "" {
			return fmt.Errorf("config: MYSQL_DSN is required when BID_STORE=mysql")
		}
	default:
		return fmt.Errorf("config: unknown BID_STORE %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	return nil
}

// CompanyIdentity converts the company block into the value printed on emitted documents.
func (c *Config) CompanyIdentity() entities.CompanyConfig {
	return entities.CompanyConfig{
		RazaoSocial: c.Company.RazaoSocial,
		CNPJ:        c.Company.CNPJ,
		Endereco:    c.Company.Endereco,
		Cidade:      c.Company.Cidade,
	}
}

func applyEnv(cfg *Config) {
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	setString(&cfg.Store.Driver, "BID_STORE")
	setString(&cfg.Store.MySQLDSN, "MYSQL_DSN")
	setString(&cfg.Store.SQLitePath, "SQLITE_PATH")

	setString(&cfg.Minio.Endpoint, "MINIO_ENDPOINT")
	setString(&cfg.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&cfg.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&cfg.Minio.Bucket, "MINIO_BUCKET")
	setString(&cfg.Minio.Region, "MINIO_REGION")
	setBool(&cfg.Minio.UseSSL, "MINIO_USE_SSL")
	setInt(&cfg.Minio.ExpireDays, "MINIO_EXPIRE_DAYS")
	setBool(&cfg.Minio.Disabled, "DOCUMENTS_DISABLED")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setInt(&cfg.Auth.TokenExpireHours, "JWT_EXPIRE_HOURS")

	setString(&cfg.Company.RazaoSocial, "COMPANY_RAZAO_SOCIAL")
	setString(&cfg.Company.CNPJ, "COMPANY_CNPJ")
	setString(&cfg.Company.Endereco, "COMPANY_ENDERECO")
	setString(&cfg.Company.Cidade, "COMPANY_CIDADE")

	setString(&cfg.Payments.MercadoPagoAccessToken, "MERCADOPAGO_ACCESS_TOKEN")
	setBool(&cfg.Payments.Mock, "PAYMENT_GATEWAY_MOCK")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDynamoDB
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "licitacoes.db"
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "documentos-disputa"
	}
	if cfg.Minio.Region == "" {
		cfg.Minio.Region = "us-east-1"
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 12
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func setBool(dst *bool, key string) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	}
}
