package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Autopilot  Autopilot  `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Warehouse  Warehouse  `mapstructure:",squash"`
	PushSync   PushSync   `mapstructure:",squash"`
	MirrorSync MirrorSync `mapstructure:",squash"`
	Lock       Lock       `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Autopilot struct {
	BaseURL       string        `mapstructure:"autopilot_base_url"`
	APIKey        string        `mapstructure:"autopilot_api_key"`
	MaxAttempts   int           `mapstructure:"autopilot_max_attempts"`
	MaxIterations int           `mapstructure:"autopilot_max_iterations"`
	Timeout       time.Duration `mapstructure:"autopilot_timeout"`
}

type Sheets struct {
	CredentialsFile  string        `mapstructure:"sheets_credentials_file"`
	SpreadsheetTitle string        `mapstructure:"sheets_spreadsheet_title"`
	SpreadsheetID    string        `mapstructure:"sheets_spreadsheet_id"`
	SettingsTab      string        `mapstructure:"sheets_settings_tab"`
	CurrentTab       string        `mapstructure:"sheets_current_tab"`
	YesterdayTab     string        `mapstructure:"sheets_yesterday_tab"`
	OpenRetries      int           `mapstructure:"sheets_open_retries"`
	OpenRetryDelay   time.Duration `mapstructure:"sheets_open_retry_delay"`
}

type Warehouse struct {
	DSN           string `mapstructure:"-"`
	User          string `mapstructure:"warehouse_user"`
	Name          string `mapstructure:"warehouse_name"`
	Password      string `mapstructure:"warehouse_password"`
	Host          string `mapstructure:"warehouse_host"`
	Port          string `mapstructure:"warehouse_port"`
	SSLMode       string `mapstructure:"warehouse_sslmode"`
	SettingsTable string `mapstructure:"warehouse_settings_table"`
}

type PushSync struct {
	CronSchedule string `mapstructure:"push_sync_cron"`
	Enabled      bool   `mapstructure:"push_sync_enabled"`
}

type MirrorSync struct {
	CronSchedule    string `mapstructure:"mirror_sync_cron"`
	Enabled         bool   `mapstructure:"mirror_sync_enabled"`
	SnapshotEnabled bool   `mapstructure:"mirror_snapshot_enabled"`
}

type Lock struct {
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"sync_lock_ttl"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("AUTOPILOT_BASE_URL", "https://api.e-comet.io")
	viper.SetDefault("AUTOPILOT_API_KEY", "")
	viper.SetDefault("AUTOPILOT_MAX_ATTEMPTS", 10)     // tentativas contabilizadas (422, 5xx)
	viper.SetDefault("AUTOPILOT_MAX_ITERATIONS", 100)  // teto de requisições sem progresso por execução
	viper.SetDefault("AUTOPILOT_TIMEOUT", time.Minute) // timeout de cada requisição

	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "creds.json")
	viper.SetDefault("SHEETS_SPREADSHEET_TITLE", "Панель управления продажами Вектор")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_SETTINGS_TAB", "Настройки автопилота")
	viper.SetDefault("SHEETS_CURRENT_TAB", "Текущие настройки автопилота")
	viper.SetDefault("SHEETS_YESTERDAY_TAB", "Вчерашние настройки автопилота")
	viper.SetDefault("SHEETS_OPEN_RETRIES", 5)
	viper.SetDefault("SHEETS_OPEN_RETRY_DELAY", 5*time.Second)

	viper.SetDefault("WAREHOUSE_USER", "")
	viper.SetDefault("WAREHOUSE_NAME", "")
	viper.SetDefault("WAREHOUSE_PASSWORD", "")
	viper.SetDefault("WAREHOUSE_HOST", "")
	viper.SetDefault("WAREHOUSE_PORT", "5432")
	viper.SetDefault("WAREHOUSE_SSLMODE", "disable")
	viper.SetDefault("WAREHOUSE_SETTINGS_TABLE", "cometa_current_settings_one")

	viper.SetDefault("PUSH_SYNC_CRON", "0 * * * *")    // a cada hora cheia
	viper.SetDefault("PUSH_SYNC_ENABLED", false)       // habilitar envio agendado
	viper.SetDefault("MIRROR_SYNC_CRON", "30 * * * *") // a cada hora, no minuto 30
	viper.SetDefault("MIRROR_SYNC_ENABLED", false)     // habilitar espelhamento agendado
	viper.SetDefault("MIRROR_SNAPSHOT_ENABLED", false) // gravar o retrato do dia no warehouse

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SYNC_LOCK_TTL", 30*time.Minute)

	viper.SetDefault("AUTH_SECRET", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	config.Warehouse.DSN = config.Warehouse.BuildDSN()

	return config, nil
}

// BuildDSN monta a URL de conexão do lib/pq a partir das credenciais separadas
func (w Warehouse) BuildDSN() string {
	if w.Host == "" {
		return ""
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(w.User, w.Password),
		Host:   fmt.Sprintf("%s:%s", w.Host, w.Port),
		Path:   "/" + w.Name,
	}
	if w.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{w.SSLMode}}.Encode()
	}

	return dsn.String()
}

// RequireAutopilot valida as credenciais da API de autopilotos
func (c *Config) RequireAutopilot() error {
	if c.Autopilot.APIKey == "" {
		return fmt.Errorf("%w: AUTOPILOT_API_KEY", ErrMissingSetting)
	}
	return nil
}

// RequireWarehouse valida as credenciais do warehouse
func (c *Config) RequireWarehouse() error {
	required := []struct {
		key   string
		value string
	}{
		{"WAREHOUSE_USER", c.Warehouse.User},
		{"WAREHOUSE_NAME", c.Warehouse.Name},
		{"WAREHOUSE_HOST", c.Warehouse.Host},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingSetting, r.key)
		}
	}
	return nil
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
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
