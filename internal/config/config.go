// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса рассылки.
type Config struct {
	Env                     string `yaml:"env"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	// BaseURL — внешний адрес сервиса, попадает в ссылку подтверждения.
	BaseURL     string `yaml:"base_url"`
	HTTPServer  `yaml:"http_server"`
	EmailClient `yaml:"email_client"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// EmailClient структура для настройки клиента почтового API.
type EmailClient struct {
	APIURL        string        `yaml:"api_url"`
	SenderAddress string        `yaml:"sender_address"`
	AuthToken     string        `yaml:"auth_token" env:"EMAIL_AUTH_TOKEN"`
	SendTimeout   time.Duration `yaml:"send_timeout"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH; при любой проблеме
// процесс завершается.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"BaseURL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"EmailClient:\n"+
			"  APIURL: %s\n"+
			"  SenderAddress: %s\n"+
			"  SendTimeout: %s\n",
		c.Env,
		c.StorageConnectionString,
		c.BaseURL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.APIURL,
		c.SenderAddress,
		c.SendTimeout,
	)
}
