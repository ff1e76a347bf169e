package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for database.driver
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Latency  LatencyConfig  `mapstructure:"latency"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "memory" or "mongo"
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
	Seed   bool   `mapstructure:"seed"` // Load the sample data on start
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
}

// LatencyConfig is the artificial delay applied before each API call.
// Zero disables the delay.
type LatencyConfig struct {
	Login            time.Duration `mapstructure:"login"`
	Signup           time.Duration `mapstructure:"signup"`
	Logout           time.Duration `mapstructure:"logout"`
	GetPlans         time.Duration `mapstructure:"get_plans"`
	GetPlan          time.Duration `mapstructure:"get_plan"`
	CreatePlan       time.Duration `mapstructure:"create_plan"`
	DeletePlan       time.Duration `mapstructure:"delete_plan"`
	GetTrainerPlans  time.Duration `mapstructure:"get_trainer_plans"`
	PlanImageUpload  time.Duration `mapstructure:"plan_image_upload"`
	Follow           time.Duration `mapstructure:"follow"`
	GetSubscriptions time.Duration `mapstructure:"get_subscriptions"`
	Subscribe        time.Duration `mapstructure:"subscribe"`
	GetWorkouts      time.Duration `mapstructure:"get_workouts"`
	AddWorkout       time.Duration `mapstructure:"add_workout"`
	GetProgress      time.Duration `mapstructure:"get_progress"`
	RecordProgress   time.Duration `mapstructure:"record_progress"`
}

// LoadConfig reads configuration from a .env file, a config.yaml under path,
// and environment variables, in increasing order of precedence.
func LoadConfig(path string) (config Config, err error) {
	// A missing .env is normal outside local development
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.driver", DriverMemory)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitplan_hub")
	v.SetDefault("database.seed", true)
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("latency.login", "500ms")
	v.SetDefault("latency.signup", "500ms")
	v.SetDefault("latency.logout", "200ms")
	v.SetDefault("latency.get_plans", "300ms")
	v.SetDefault("latency.get_plan", "200ms")
	v.SetDefault("latency.create_plan", "600ms")
	v.SetDefault("latency.delete_plan", "400ms")
	v.SetDefault("latency.get_trainer_plans", "300ms")
	v.SetDefault("latency.plan_image_upload", "300ms")
	v.SetDefault("latency.follow", "200ms")
	v.SetDefault("latency.get_subscriptions", "400ms")
	v.SetDefault("latency.subscribe", "500ms")
	v.SetDefault("latency.get_workouts", "300ms")
	v.SetDefault("latency.add_workout", "400ms")
	v.SetDefault("latency.get_progress", "300ms")
	v.SetDefault("latency.record_progress", "400ms")

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	// Duration strings ("500ms", "1s") decode straight into time.Duration fields.
	if err = v.Unmarshal(&config); err != nil {
		return
	}

	switch config.Database.Driver {
	case DriverMemory, DriverMongo:
	default:
		return config, fmt.Errorf("unsupported database.driver %q", config.Database.Driver)
	}

	return config, nil
}
