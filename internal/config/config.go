package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"identity"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string   `envconfig:"IDENTITY_ADDRESS" default:":3443"`
	MetricsAddress  string   `envconfig:"IDENTITY_METRICS_ADDRESS" default:":8080"`
	BaseUrl         string   `envconfig:"IDENTITY_BASE_URL" default:"https://localhost:3443"`
	LogLevel        string   `envconfig:"IDENTITY_LOG_LEVEL" default:"info"`
	AllowedOrigins  []string `envconfig:"IDENTITY_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	MigrationFolder string   `envconfig:"IDENTITY_MIGRATIONS_FOLDER" default:""`
	GatewayPrefix   string   `envconfig:"IDENTITY_GATEWAY_PREFIX" default:"/api/identity"`
	Auth            Auth
	S3              S3
	Events          Events
}

type Auth struct {
	AuthenticationType string `envconfig:"IDENTITY_AUTH" default:""`
	JwkCertURL         string `envconfig:"IDENTITY_JWK_URL" default:""`
	Issuer             string `envconfig:"IDENTITY_JWT_ISSUER" default:""`
}

// S3 configures the bucket holding uploaded documents. An empty endpoint
// keeps documents in memory, which is only meant for local development.
type S3 struct {
	Endpoint  string `envconfig:"IDENTITY_S3_ENDPOINT" default:""`
	Bucket    string `envconfig:"IDENTITY_S3_BUCKET" default:"candidate-documents"`
	AccessKey string `envconfig:"IDENTITY_S3_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"IDENTITY_S3_SECRET_KEY" default:""`
	UseSSL    bool   `envconfig:"IDENTITY_S3_USE_SSL" default:"false"`
}

type Events struct {
	Writer string `envconfig:"IDENTITY_EVENTS_WRITER" default:"stdout"`
	Topic  string `envconfig:"IDENTITY_EVENTS_TOPIC" default:"hireloop.identity.events"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration backed by a shared in-memory sqlite
// database, no authentication and in-memory document storage.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type: "sqlite",
			Name: "file::memory:?cache=shared",
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			BaseUrl:        "https://localhost:3443",
			LogLevel:       "debug",
			AllowedOrigins: []string{"http://localhost:3000"},
			GatewayPrefix:  "/api/identity",
			Auth:           Auth{AuthenticationType: "none"},
			S3:             S3{Bucket: "candidate-documents"},
			Events:         Events{Writer: "stdout", Topic: "hireloop.identity.events"},
		},
	}
}

// PostgresDSN is the connection string shared by gorm and the migrations runner.
func (c *Config) PostgresDSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s port=%s",
		c.Database.Hostname,
		c.Database.User,
		c.Database.Password,
		c.Database.Port,
	)
	if c.Database.Name != "" {
		dsn = fmt.Sprintf("%s dbname=%s", dsn, c.Database.Name)
	}
	return dsn
}
