// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Storage    `yaml:"storage"`
	HTTPServer `yaml:"http_server"`
	JWTToken   `yaml:"jwttoken"`
	Delays     `yaml:"delays"`
}

// Storage структура для настройки встроенного хранилища
type Storage struct {
	Path          string `yaml:"path" env:"STORAGE_PATH" env-default:"nailora.db"`
	MaxValueBytes int    `yaml:"max_value_bytes" env-default:"2097152"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
	RememberTTL  time.Duration `yaml:"remember_ttl" env-default:"720h"`
}

// Delays структура с длительностями симулируемых задержек.
// Значения существуют только ради плавных переходов интерфейса,
// в тестах все они устанавливаются в ноль.
type Delays struct {
	Transition time.Duration `yaml:"transition" env-default:"250ms"`
	Splash     time.Duration `yaml:"splash" env-default:"1500ms"`
	Processing time.Duration `yaml:"processing" env-default:"2s"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH.
// Завершает процесс при отсутствии файла или ошибке парсинга.
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
			"Storage:\n"+
			"  Path: %s\n"+
			"  MaxValueBytes: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"  RememberTTL: %s\n"+
			"Delays:\n"+
			"  Transition: %s\n"+
			"  Splash: %s\n"+
			"  Processing: %s\n",
		c.Env,
		c.Path,
		c.MaxValueBytes,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.RememberTTL,
		c.Transition,
		c.Splash,
		c.Processing,
	)
}
