package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Deadline  Deadline  `mapstructure:",squash"`
	Search    Search    `mapstructure:",squash"`
	AlertSync AlertSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Locale   string `mapstructure:"app_locale"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
	MaxOpenConns  int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns  int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

// Deadline prazo de distribuição das campanhas
type Deadline struct {
	MaxDays     int `mapstructure:"deadline_max_days"`
	WarningDays int `mapstructure:"deadline_warning_days"`
}

type Search struct {
	DebounceMS int `mapstructure:"search_debounce_ms"`
}

// Debounce pausa de digitação antes de aplicar a busca
func (s Search) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

type AlertSync struct {
	CronSchedule string `mapstructure:"alert_sync_cron"`
	Enabled      bool   `mapstructure:"alert_sync_enabled"`
	DebounceMS   int    `mapstructure:"alert_sync_debounce_ms"`
	Timezone     string `mapstructure:"alert_sync_timezone"`
}

func (a AlertSync) Debounce() time.Duration {
	return time.Duration(a.DebounceMS) * time.Millisecond
}

// Location fuso usado pelo agendador, UTC quando inválido
func (a AlertSync) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Timezone inválido %q, usando UTC: %v", a.Timezone, err)
		return time.UTC
	}

	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	// Prazo de distribuição: 15 dias, aviso nos últimos 3
	viper.SetDefault("DEADLINE_MAX_DAYS", 15)
	viper.SetDefault("DEADLINE_WARNING_DAYS", 3)

	viper.SetDefault("SEARCH_DEBOUNCE_MS", 300)

	viper.SetDefault("ALERT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ALERT_SYNC_ENABLED", false)
	viper.SetDefault("ALERT_SYNC_DEBOUNCE_MS", 300)
	viper.SetDefault("ALERT_SYNC_TIMEZONE", "Europe/Paris")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_LOCALE", "fr")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Deadline.WarningDays > config.Deadline.MaxDays {
		return nil, fmt.Errorf("deadline_warning_days (%d) maior que deadline_max_days (%d)",
			config.Deadline.WarningDays, config.Deadline.MaxDays)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
