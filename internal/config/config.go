package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Storage backend identifiers
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSheets   = "sheets"
)

// Schedule policy identifiers
const (
	PolicyPerDay = "per-day"
	PolicyWindow = "window"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Schedule ScheduleConfig `toml:"schedule"`
	Form     FormConfig     `toml:"form"`
	Notifier NotifierConfig `toml:"notifier"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // seconds
	WriteTimeout    int      `toml:"write_timeout"`    // seconds
	IdleTimeout     int      `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int      `toml:"shutdown_timeout"` // seconds
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор и настройки backend'а хранилища.
// Backend выбирается один раз при старте, обработчики о нем не знают.
type StorageConfig struct {
	Backend  string         `toml:"backend"` // file | redis | postgres | sheets
	File     FileConfig     `toml:"file"`
	Redis    RedisConfig    `toml:"redis"`
	Postgres PostgresConfig `toml:"postgres"`
	Sheets   SheetsConfig   `toml:"sheets"`
}

// FileConfig настройки файлового хранилища
type FileConfig struct {
	Path string `toml:"path"`
}

// RedisConfig настройки redis хранилища
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"` // имя hash-ключа с бронированиями
}

// PostgresConfig настройки postgres хранилища
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к postgres
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SheetsConfig настройки google sheets хранилища
type SheetsConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	Range           string `toml:"range"` // например "Bookings!A2:J"
	CredentialsFile string `toml:"credentials_file"`
}

// ScheduleConfig конфигурация каталога слотов.
// Политика per-day: явный список дней с собственными диапазонами часов.
// Политика window: общий список слотов для каждого дня окна дат.
type ScheduleConfig struct {
	Policy string       `toml:"policy"` // per-day | window
	Days   []DayConfig  `toml:"days"`
	Window WindowConfig `toml:"window"`
}

// DayConfig один настроенный день (политика per-day).
// Часы заданы строками: legacy-конфигурации содержали нечисловые значения,
// они молча заменяются на 9–17.
type DayConfig struct {
	Date      string `toml:"date"`
	StartHour string `toml:"start_hour"`
	EndHour   string `toml:"end_hour"`
}

// WindowConfig окно дат с общим списком слотов (политика window).
// Если MinDate/MaxDate пусты, окно считается скользящим: [today, today+DaysAhead].
type WindowConfig struct {
	MinDate   string   `toml:"min_date"`
	MaxDate   string   `toml:"max_date"`
	DaysAhead int      `toml:"days_ahead"`
	TimeSlots []string `toml:"time_slots"`
}

// FormConfig правила валидации анкеты
type FormConfig struct {
	MinAge               int  `toml:"min_age"`
	MaxAge               int  `toml:"max_age"`
	RequireEducation     bool `toml:"require_education"`
	RequireNativeSpeaker bool `toml:"require_native_speaker"`
	MaxTotalBookings     int  `toml:"max_total_bookings"` // 0 = без ограничения
}

// NotifierConfig настройки email-уведомлений.
// API-ключ берется из переменной окружения SENDGRID_API_KEY.
type NotifierConfig struct {
	Enabled   bool   `toml:"enabled"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	Subject   string `toml:"subject"`
	QueueSize int    `toml:"queue_size"`
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointment-service"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.File.Path == "" {
		c.Storage.File.Path = "data/bookings.json"
	}
	if c.Storage.Redis.Key == "" {
		c.Storage.Redis.Key = "bookings"
	}
	if c.Storage.Sheets.Range == "" {
		c.Storage.Sheets.Range = "Bookings!A2:J"
	}
	if c.Schedule.Policy == "" {
		c.Schedule.Policy = PolicyWindow
	}
	if c.Form.MinAge == 0 {
		c.Form.MinAge = domain.DefaultMinAge
	}
	if c.Form.MaxAge == 0 {
		c.Form.MaxAge = domain.DefaultMaxAge
	}
	if c.Form.MaxTotalBookings == 0 {
		c.Form.MaxTotalBookings = domain.DefaultMaxTotalBookings
	}
	if c.Notifier.QueueSize == 0 {
		c.Notifier.QueueSize = 64
	}
	if c.Notifier.Subject == "" {
		c.Notifier.Subject = "Appointment confirmation"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendPostgres, BackendSheets:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Schedule.Policy {
	case PolicyPerDay, PolicyWindow:
	default:
		return fmt.Errorf("config: unknown schedule policy %q", c.Schedule.Policy)
	}
	if c.Form.MinAge > c.Form.MaxAge {
		return fmt.Errorf("config: min_age %d is greater than max_age %d", c.Form.MinAge, c.Form.MaxAge)
	}
	return nil
}

// BuildCatalog строит каталог слотов по текущей конфигурации расписания.
// Вызывается при старте и при перезагрузке расписания.
func (s ScheduleConfig) BuildCatalog(now time.Time) (*domain.Catalog, error) {
	switch s.Policy {
	case PolicyPerDay:
		days := make([]domain.DaySchedule, 0, len(s.Days))
		for _, d := range s.Days {
			days = append(days, domain.DaySchedule{
				Date:      d.Date,
				StartHour: parseHour(d.StartHour, domain.DefaultStartHour),
				EndHour:   parseHour(d.EndHour, domain.DefaultEndHour),
			})
		}
		return domain.NewPerDayCatalog(days), nil

	case PolicyWindow:
		if s.Window.MinDate == "" || s.Window.MaxDate == "" {
			return domain.NewRollingWindowCatalog(now, s.Window.DaysAhead, s.Window.TimeSlots), nil
		}
		return domain.NewWindowCatalog(s.Window.MinDate, s.Window.MaxDate, s.Window.TimeSlots)

	default:
		return nil, fmt.Errorf("config: unknown schedule policy %q", s.Policy)
	}
}

// parseHour парсит час из строки, заменяя нечисловые значения дефолтом
func parseHour(raw string, fallback int) int {
	h, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return h
}
