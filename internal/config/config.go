package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Хранилище: при пустом DSN используется sqlite в памяти
	DatabaseDSN string `env:"DATABASE_URI"`

	// Адрес HTTP-сервера
	BaseURL string `env:"BASE_URL"`

	// Порог создания совпадения: сохраняются только пары со score выше порога
	MatchThreshold float64 `env:"MATCH_THRESHOLD"`

	// Размер страницы поиска по умолчанию
	PageLimit int `env:"PAGE_LIMIT"`

	// Засеять демонстрационные заявки при старте
	SeedDemo bool `env:"SEED_DEMO"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто — sqlite в памяти)")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес HTTP-сервера в виде host:port")
	flag.Float64Var(&cfg.MatchThreshold, "match-threshold", cfg.MatchThreshold, "порог сохранения совпадений (0..1)")
	flag.IntVar(&cfg.PageLimit, "page-limit", cfg.PageLimit, "размер страницы поиска по умолчанию")
	flag.BoolVar(&cfg.SeedDemo, "seed", cfg.SeedDemo, "засеять демонстрационные данные при старте")

	flag.Parse()

	// Defaults
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}
	if cfg.MatchThreshold <= 0 || cfg.MatchThreshold >= 1 {
		cfg.MatchThreshold = 0.5
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 20
	}

	return cfg
}
