package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	ProviderGemini       = "gemini"
	ProviderPollinations = "pollinations"

	DefaultProvider        = ProviderPollinations
	DefaultImageModel      = "gemini-3-pro-image-preview"
	DefaultStoreDir        = ".canon-forge"
	DefaultOutputDir       = "output/images"
	DefaultPort            = "8080"
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultRequestTimeout  = 2 * time.Minute
	DefaultRateInterval    = 2 * time.Second
	DefaultConcurrency     = 2
	DefaultCacheTTL        = 30 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	Provider            string
	GeminiAPIKey        string
	GeminiImageModel    string
	PollinationsBaseURL string
	StoreDir            string // ローカル or gs://
	OutputDir           string // ローカル or gs://
	Port                string
	LogLevel            string
	LogNoTime           bool

	HTTPTimeout     time.Duration
	RequestTimeout  time.Duration
	RateInterval    time.Duration
	Concurrency     int
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		Provider:            strings.ToLower(envutil.GetEnv("CANON_PROVIDER", DefaultProvider)),
		GeminiAPIKey:        envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiImageModel:    envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		PollinationsBaseURL: envutil.GetEnv("POLLINATIONS_BASE_URL", ""),
		StoreDir:            envutil.GetEnv("CANON_STORE_DIR", DefaultStoreDir),
		OutputDir:           envutil.GetEnv("CANON_OUTPUT_DIR", DefaultOutputDir),
		Port:                envutil.GetEnv("PORT", DefaultPort),
		LogLevel:            envutil.GetEnv("LOG_LEVEL", "info"),
		LogNoTime:           parseBool(envutil.GetEnv("CANON_LOG_NO_TIME", "")),
		HTTPTimeout:         parseDuration(envutil.GetEnv("CANON_HTTP_TIMEOUT", ""), DefaultHTTPTimeout),
		RequestTimeout:      parseDuration(envutil.GetEnv("CANON_REQUEST_TIMEOUT", ""), DefaultRequestTimeout),
		RateInterval:        parseDuration(envutil.GetEnv("CANON_RATE_INTERVAL", ""), DefaultRateInterval),
		Concurrency:         parseInt(envutil.GetEnv("CANON_CONCURRENCY", ""), DefaultConcurrency),
		CacheTTL:            parseDuration(envutil.GetEnv("CANON_CACHE_TTL", ""), DefaultCacheTTL),
		ShutdownTimeout:     parseDuration(envutil.GetEnv("CANON_SHUTDOWN_TIMEOUT", ""), DefaultShutdownTimeout),
	}
}

// Validate は起動前に必須設定を確認します。
// Gemini の API キー不足はここでは弾かず、生成時に AUTH_REQUIRED として扱うのだ。
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderPollinations:
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", c.Provider, ProviderGemini, ProviderPollinations)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive: %d", c.Concurrency)
	}
	return nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
