package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	EscrowDB   `yaml:"escrow_db"`
	LogConfig  `yaml:"log_config"`
	Auth       `yaml:"auth"`
	YooKassa   `yaml:"yookassa"`
	Escrow     `yaml:"escrow"`
	Kafka      `yaml:"kafka"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type EscrowDB struct {
	Dsn string `yaml:"dsn" env:"DATABASE_URL"`
	// Versioned SQL migrations are applied on start when the path is set,
	// otherwise the schema comes from AutoMigrate.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

type Auth struct {
	JWTSecret        string `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"default_dev_secret_key"`
	TelegramBotToken string `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
}

// YooKassa credentials. Empty ShopID/SecretKey switch the gateway client
// into mock mode.
type YooKassa struct {
	ShopID    string `yaml:"shop_id" env:"YUKASSA_SHOP_ID"`
	SecretKey string `yaml:"secret_key" env:"YUKASSA_SECRET_KEY"`
	APIURL    string `yaml:"api_url" env:"YUKASSA_API_URL" env-default:"https://api.yookassa.ru/v3"`
}

type Escrow struct {
	CommissionPercent float64 `yaml:"commission_percent" env:"COMMISSION_PERCENT" env-default:"5"`
	Currency          string  `yaml:"currency" env:"CURRENCY" env-default:"RUB"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"escrow-events"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	var cfg EscrowConfig

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("failed to read config from env: %v", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
