// config реализует конфигурацию ya-news: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Ops        OpsConfig        `yaml:"ops"`
	DB         DBConfig         `yaml:"db"`
	Auth       AuthConfig       `yaml:"auth"`
	Content    ContentConfig    `yaml:"content"`
	Moderation ModerationConfig `yaml:"moderation"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки основного HTTP-сервера (сайт).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// OpsConfig — служебный HTTP (livez/healthz/metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"8081"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (o OpsConfig) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// DBConfig — настройки подключения к PostgreSQL.
type DBConfig struct {
	URL            string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// AuthConfig — проверка access-токенов внешнего auth-провайдера
// и адрес страницы входа для редиректов анонимов.
type AuthConfig struct {
	Secret   string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	Issuer   string `yaml:"issuer" env:"JWT_ISSUER" env-default:"ya-news-auth"`
	LoginURL string `yaml:"login_url" env:"LOGIN_URL" env-default:"/auth/login"`
}

// ContentConfig — параметры выдачи контента.
type ContentConfig struct {
	// Размер главной страницы: лента всегда отдаёт не более NewsOnHomePage
	// самых свежих новостей.
	NewsOnHomePage int `yaml:"news_on_home_page" env:"NEWS_COUNT_ON_HOME_PAGE" env-default:"10"`
}

// ModerationConfig — фильтр запрещённых слов.
// BannedTerms сравниваются как буквальные подстроки с учётом регистра,
// Warning возвращается дословно при любом совпадении.
type ModerationConfig struct {
	BannedTerms []string `yaml:"banned_terms" env:"BANNED_TERMS" env-separator:"," env-default:"редиска,негодяй"`
	Warning     string   `yaml:"warning" env:"WARNING" env-default:"Не ругайтесь!"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	readFile := func(p string) error {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return fmt.Errorf("failed to read config %q: %w", p, err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	switch {
	// 1) Явный путь.
	case path != "":
		if err := readFile(path); err != nil {
			return nil, err
		}
	// 2) CONFIG_PATH.
	case os.Getenv("CONFIG_PATH") != "":
		if err := readFile(os.Getenv("CONFIG_PATH")); err != nil {
			return nil, err
		}
	// 3) ./local.yaml, если он есть.
	case fileExists("local.yaml"):
		if err := readFile("local.yaml"); err != nil {
			return nil, err
		}
	// 4) Только ENV.
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required")
	}

	if c.Auth.LoginURL == "" {
		return fmt.Errorf("auth.login_url is required")
	}

	if c.Content.NewsOnHomePage <= 0 {
		return fmt.Errorf("content.news_on_home_page must be > 0")
	}

	if len(c.Moderation.BannedTerms) == 0 {
		return fmt.Errorf("moderation.banned_terms must not be empty")
	}

	if c.Moderation.Warning == "" {
		return fmt.Errorf("moderation.warning is required")
	}

	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}

	return nil
}
