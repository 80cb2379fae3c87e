package config

import (
	"time"
)

type MainRepoConfig struct {
	General    GeneralConfig    `yaml:"repo"`
	Images     ImagesConfig     `yaml:"images"`
	Thumbnails ThumbnailsConfig `yaml:"thumbnails"`
	Cache      CacheConfig      `yaml:"cache"`
	Hotels     HotelsConfig     `yaml:"hotels"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Sentry     SentryConfig     `yaml:"sentry"`
}

type GeneralConfig struct {
	BindAddress     string `yaml:"bindAddress"`
	Port            int    `yaml:"port"`
	LogDirectory    string `yaml:"logDirectory"`
	LogColors       bool   `yaml:"logColors"`
	JsonLogs        bool   `yaml:"jsonLogs"`
	LogLevel        string `yaml:"logLevel"`
	TrustAnyForward bool   `yaml:"trustAnyForwardedAddress"`
	PublicBaseUrl   string `yaml:"publicBaseUrl"`
}

type ImagesConfig struct {
	Store     string   `yaml:"store"`
	Directory string   `yaml:"directory"`
	S3        S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint     string `yaml:"endpoint"`
	BucketName   string `yaml:"bucketName"`
	AccessKeyId  string `yaml:"accessKeyId"`
	AccessSecret string `yaml:"accessSecret"`
	Region       string `yaml:"region"`
	Ssl          bool   `yaml:"ssl"`
	Prefix       string `yaml:"prefix"`
}

type ThumbnailsConfig struct {
	GenerationDelayMs int    `yaml:"generationDelayMs"`
	JpegQuality       int    `yaml:"jpegQuality"`
	ResampleFilter    string `yaml:"resampleFilter"`
	NumWorkers        int    `yaml:"numWorkers"`
	Singleflight      bool   `yaml:"singleflight"`
}

func (c ThumbnailsConfig) GenerationDelay() time.Duration {
	if c.GenerationDelayMs <= 0 {
		return 0
	}
	return time.Duration(c.GenerationDelayMs) * time.Millisecond
}

type CacheConfig struct {
	Policy        string         `yaml:"policy"`
	ExpireMinutes int            `yaml:"expireMinutes"`
	Pressure      PressureConfig `yaml:"pressure"`
}

type PressureConfig struct {
	MaxMemoryPercent     float64 `yaml:"maxMemoryPercent"`
	CheckIntervalSeconds int     `yaml:"checkIntervalSeconds"`
}

type HotelsConfig struct {
	DataFile string `yaml:"dataFile"`
}

type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bindAddress"`
	Port        int    `yaml:"port"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}
