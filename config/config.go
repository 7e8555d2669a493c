package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
	Audit   AuditConfig
}

type AppConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// BookingConfig controls availability computation: how far ahead patients
// can book and the fixed width of an appointment slot.
type BookingConfig struct {
	HorizonDays int
	SlotWidth   time.Duration
}

type AuditConfig struct {
	RetentionDays int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	horizonDays := viper.GetInt("BOOKING_HORIZON_DAYS")
	if horizonDays <= 0 {
		horizonDays = 30
	}

	slotMinutes := viper.GetInt("BOOKING_SLOT_MINUTES")
	if slotMinutes <= 0 {
		slotMinutes = 30
	}

	retentionDays := viper.GetInt("AUDIT_RETENTION_DAYS")
	if retentionDays <= 0 {
		retentionDays = 90
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	allowedOrigins := splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Booking: BookingConfig{
			HorizonDays: horizonDays,
			SlotWidth:   time.Duration(slotMinutes) * time.Minute,
		},
		Audit: AuditConfig{
			RetentionDays: retentionDays,
		},
	}

	return config, nil
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
