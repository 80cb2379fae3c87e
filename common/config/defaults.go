package config

const CachePolicyUnbounded = "unbounded"
const CachePolicyPressure = "pressure"
const CachePolicyExpiring = "expiring"
const CachePolicyNone = "none"

const ImageStoreFile = "file"
const ImageStoreS3 = "s3"

func NewDefaultMainConfig() MainRepoConfig {
	return MainRepoConfig{
		General: GeneralConfig{
			BindAddress:     "127.0.0.1",
			Port:            8080,
			LogDirectory:    "logs",
			LogColors:       false,
			JsonLogs:        false,
			LogLevel:        "info",
			TrustAnyForward: false,
			PublicBaseUrl:   "http://localhost:8080",
		},
		Images: ImagesConfig{
			Store:     ImageStoreFile,
			Directory: "images",
			S3: S3Config{
				Ssl: true,
			},
		},
		Thumbnails: ThumbnailsConfig{
			GenerationDelayMs: 1000,
			JpegQuality:       75,
			ResampleFilter:    "box",
			NumWorkers:        0,
			Singleflight:      false,
		},
		Cache: CacheConfig{
			Policy:        CachePolicyUnbounded,
			ExpireMinutes: 30,
			Pressure: PressureConfig{
				MaxMemoryPercent:     90,
				CheckIntervalSeconds: 10,
			},
		},
		Hotels: HotelsConfig{
			DataFile: "hotels.yaml",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			BindAddress: "localhost",
			Port:        9000,
		},
		Sentry: SentryConfig{
			Enabled:     false,
			Dsn:         "not supplied",
			Environment: "",
			Debug:       false,
		},
	}
}
