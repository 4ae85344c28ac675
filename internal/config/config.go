// config предоставляет структуру конфигурации newsgen
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config: корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env"     env:"ENV"        env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	DB         DBConfig         `yaml:"db"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	Generation GenerationConfig `yaml:"generation"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Auth       AuthConfig       `yaml:"auth"`
	Limits     LimitsConfig     `yaml:"limits"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
	Seed       SeedConfig       `yaml:"seed"`
}

// TimeoutConfig: таймауты сервиса.
type TimeoutConfig struct {
	// Service: таймаут на обычные (не генерирующие) HTTP-запросы.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig: сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig: настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// GatewayConfig: OpenAI-совместимый шлюз моделей.
// Ключ намеренно не обязателен: без него сервис стартует,
// но каждая генерация завершается ошибкой конфигурации.
type GatewayConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"GATEWAY_BASE_URL"   env-default:"https://openrouter.ai/api/v1"`
	APIKey    string        `yaml:"api_key"    env:"OPENROUTER_API_KEY"`
	Timeout   time.Duration `yaml:"timeout"    env:"GATEWAY_TIMEOUT"    env-default:"60s"`
	MaxTokens int           `yaml:"max_tokens" env:"GATEWAY_MAX_TOKENS" env-default:"1024"`
	SiteURL   string        `yaml:"site_url"   env:"SITE_URL"`
	SiteName  string        `yaml:"site_name"  env:"SITE_NAME"          env-default:"Novina News Platform"`
}

// GenerationConfig: параметры оркестрации.
type GenerationConfig struct {
	// CategorySlug: категория для сгенерированных вестей; пусто: без категории.
	CategorySlug string `yaml:"category_slug" env:"GENERATION_CATEGORY_SLUG" env-default:"kratke-vijesti"`
	// MaxParallel: предел параллельных запросов в плановом режиме; 0: без предела.
	MaxParallel int `yaml:"max_parallel" env:"GENERATION_MAX_PARALLEL" env-default:"0"`
	// FinalizeTimeout ограничивает финальную запись статуса пакета.
	FinalizeTimeout time.Duration `yaml:"finalize_timeout" env:"GENERATION_FINALIZE_TIMEOUT" env-default:"10s"`
}

// ScheduleConfig: встроенный планировщик планового режима.
type ScheduleConfig struct {
	Enabled    bool          `yaml:"enabled"      env:"SCHEDULE_ENABLED"      env-default:"false"`
	Interval   time.Duration `yaml:"interval"     env:"SCHEDULE_INTERVAL"     env-default:"24h"`
	RunOnStart bool          `yaml:"run_on_start" env:"SCHEDULE_RUN_ON_START" env-default:"false"`
}

// AuthConfig: проверка access-токенов редакторов и секрета cron.
type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret"  env:"JWT_SECRET"`
	Issuer     string `yaml:"issuer"      env:"JWT_ISSUER"   env-default:"auth-service"`
	Audience   string `yaml:"audience"    env:"JWT_AUDIENCE" env-default:"novina"`
	CronSecret string `yaml:"cron_secret" env:"CRON_SECRET"`
}

// LimitsConfig: серверные лимиты на выдачу истории пакетов.
type LimitsConfig struct {
	// Применяется при запросе без limit.
	Default int `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// SeedConfig: путь к YAML с начальными провайдерами, темами и авторами.
type SeedConfig struct {
	Path string `yaml:"path" env:"SEED_PATH"`
}

// MustLoad: обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// localConfig: файл, который ищется в рабочей директории, если путь не задан.
const localConfig = "local.yaml"

// Load читает конфигурацию из первого найденного источника:
// явный path, затем CONFIG_PATH, затем ./local.yaml, иначе только ENV.
// ENV перекрывает значения из файла (так cleanenv работает с env-тегами).
func Load(path string) (*Config, error) {
	const op = "config.Load"

	src, explicit := resolveSource(path)

	var cfg Config
	var err error
	switch {
	case src == "":
		if err = cleanenv.ReadEnv(&cfg); err != nil {
			err = fmt.Errorf("no config file found (--config, CONFIG_PATH, %s) and env is incomplete: %w", localConfig, err)
		}
	case explicit:
		if _, statErr := os.Stat(src); statErr != nil {
			return nil, fmt.Errorf("%s: config file does not exist: %s", op, src)
		}
		fallthrough
	default:
		if err = cleanenv.ReadConfig(src, &cfg); err != nil {
			err = fmt.Errorf("read %s: %w", src, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// resolveSource возвращает путь к файлу конфигурации и признак того,
// что путь задан явно (флагом или CONFIG_PATH). Пустой путь: читать только ENV.
func resolveSource(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, false
	}

	return "", false
}

// validate: базовая валидация значений.
func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local, dev, prod; got %q", c.Env)
	}
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("gateway.base_url is required")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway.timeout must be > 0")
	}
	if c.Gateway.MaxTokens <= 0 {
		return fmt.Errorf("gateway.max_tokens must be > 0")
	}
	if c.Generation.MaxParallel < 0 {
		return fmt.Errorf("generation.max_parallel must be >= 0")
	}
	if c.Generation.FinalizeTimeout <= 0 {
		return fmt.Errorf("generation.finalize_timeout must be > 0")
	}
	if c.Schedule.Enabled && c.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1m")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}
	return nil
}
