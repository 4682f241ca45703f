package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Supported model providers.
const (
	ProviderArk    = "ark"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Supported session stores.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config aggregates every setting of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
	App    AppConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	app, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Store: store, App: app}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// loadServerConfig resolves the listen address.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as given.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the language model providers.
type AIConfig struct {
	Provider string

	// Volcengine Ark
	APIKey    string
	AccessKey string
	SecretKey string
	Model     string
	BaseURL   string
	Region    string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ArkEnabled reports whether the Ark model and credentials are present.
func (c AIConfig) ArkEnabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// ResolvedProvider returns the explicit provider, or the first one with credentials.
// Empty means no model is configured.
func (c AIConfig) ResolvedProvider() string {
	if c.Provider != "" {
		return c.Provider
	}
	switch {
	case c.GeminiAPIKey != "":
		return ProviderGemini
	case c.ArkEnabled():
		return ProviderArk
	case c.OpenAIAPIKey != "":
		return ProviderOpenAI
	default:
		return ""
	}
}

// Enabled reports whether a model provider can be built.
func (c AIConfig) Enabled() bool {
	switch c.ResolvedProvider() {
	case ProviderArk:
		return c.ArkEnabled()
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	default:
		return false
	}
}

// NewChatModel builds an Ark chat model from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.ArkEnabled() {
		return nil, fmt.Errorf("ark credentials or model missing: set ARK_API_KEY + Model or an AK/SK pair")
	}

	temperature := c.Temperature
	maxTokens := c.MaxTokens

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
	switch provider {
	case "", ProviderArk, ProviderGemini, ProviderOpenAI:
	default:
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value %q", provider)
	}

	temperature := 0.7
	if override, err := parseOptionalFloatEnv("AI_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	maxTokens := 2048
	if override, err := parseOptionalIntEnv("AI_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		maxTokens = *override
	}

	timeoutSeconds := 60
	if override, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	return AIConfig{
		Provider:      provider,
		APIKey:        strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:     strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:     strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:         strings.TrimSpace(os.Getenv("Model")),
		BaseURL:       getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:        getEnvOrDefault("ARK_REGION", "cn-beijing"),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Temperature:   float32(temperature),
		MaxTokens:     maxTokens,
		Timeout:       time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// StoreConfig describes session persistence and the session cookie.
type StoreConfig struct {
	Driver        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SQLitePath    string
	TTL           time.Duration
	CookieName    string
	CookieSecure  bool
}

func loadStoreConfig() (StoreConfig, error) {
	driver := strings.ToLower(getEnvOrDefault("SESSION_STORE", StoreMemory))
	switch driver {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return StoreConfig{}, fmt.Errorf("invalid SESSION_STORE value %q", driver)
	}

	redisDB := 0
	if override, err := parseOptionalIntEnv("REDIS_DB"); err != nil {
		return StoreConfig{}, err
	} else if override != nil {
		redisDB = *override
	}

	ttlHours := 720
	if override, err := parseOptionalIntEnv("SESSION_TTL_HOURS"); err != nil {
		return StoreConfig{}, err
	} else if override != nil && *override > 0 {
		ttlHours = *override
	}

	secure, err := parseBoolEnv("SESSION_COOKIE_SECURE", false)
	if err != nil {
		return StoreConfig{}, err
	}

	return StoreConfig{
		Driver:        driver,
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		SQLitePath:    getEnvOrDefault("SQLITE_PATH", "data/sessions.db"),
		TTL:           time.Duration(ttlHours) * time.Hour,
		CookieName:    getEnvOrDefault("SESSION_COOKIE", "health_session"),
		CookieSecure:  secure,
	}, nil
}

// AppConfig describes the runtime environment.
type AppConfig struct {
	Env      string
	LogLevel string
	Location *time.Location
}

func loadAppConfig() (AppConfig, error) {
	location := time.Local
	if name := strings.TrimSpace(os.Getenv("APP_TIMEZONE")); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid APP_TIMEZONE value %q: %w", name, err)
		}
		location = loc
	}

	return AppConfig{
		Env:      getEnvOrDefault("APP_ENV", "production"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Location: location,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
