package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Journal  JournalConfig
	Log      LogConfig
	// RandomSeed 固定随机源，便于复现推荐结果；nil 表示按时间播种。
	RandomSeed *uint64
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	journal, err := loadJournalConfig()
	if err != nil {
		return nil, err
	}

	seed, err := parseOptionalUintEnv("RANDOM_SEED")
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:     server,
		Database:   database,
		AI:         ai,
		Journal:    journal,
		Log:        loadLogConfig(),
		RandomSeed: seed,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
	// AllowedOrigins 为逗号分隔的 CORS 白名单，"*" 表示放行全部。
	AllowedOrigins string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	origins := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// DatabaseConfig 描述持久化配置。
type DatabaseConfig struct {
	Backend string
	Path    string
}

func loadDatabaseConfig() (DatabaseConfig, error) {
	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", StorageSQLite))
	if backend != StorageSQLite && backend != StorageMemory {
		return DatabaseConfig{}, fmt.Errorf("invalid STORAGE_BACKEND value %q", backend)
	}

	return DatabaseConfig{
		Backend: backend,
		Path:    getEnvOrDefault("DATABASE_URL", "sqlite.db"),
	}, nil
}

// AI providers.
const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
)

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	Provider    string
	Timeout     time.Duration
	Temperature *float64
	TopP        *float64
	MaxTokens   *int

	GeminiAPIKey string
	GeminiModel  string

	APIKey    string
	AccessKey string
	SecretKey string
	Model     string
	BaseURL   string
	Region    string
}

// Enabled 表示当前 provider 是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderArk:
		return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
	case ProviderGemini:
		return c.GeminiAPIKey != "" && c.GeminiModel != ""
	default:
		return false
	}
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%s 凭证或模型配置缺失", c.Provider)
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	switch c.Provider {
	case ProviderArk:
		return ark.NewChatModel(ctx, &ark.ChatModelConfig{
			BaseURL:     c.BaseURL,
			Region:      c.Region,
			APIKey:      c.APIKey,
			AccessKey:   c.AccessKey,
			SecretKey:   c.SecretKey,
			Model:       c.Model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			TopP:        topP,
		})
	default:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       c.GeminiModel,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			TopP:        topP,
		})
	}
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderGemini))
	if provider != ProviderGemini && provider != ProviderArk {
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value %q", provider)
	}

	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := 8
	if override, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("invalid AI_TIMEOUT_SECONDS value %d: must be positive", *override)
		}
		timeoutSeconds = *override
	}

	return AIConfig{
		Provider:     provider,
		Timeout:      time.Duration(timeoutSeconds) * time.Second,
		Temperature:  temperature,
		TopP:         topP,
		MaxTokens:    maxTokens,
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		APIKey:       strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:    strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:    strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:        strings.TrimSpace(os.Getenv("Model")),
		BaseURL:      getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:       getEnvOrDefault("ARK_REGION", "cn-beijing"),
	}, nil
}

// JournalConfig 控制日记对话行为。
type JournalConfig struct {
	HistoryLimit int
}

func loadJournalConfig() (JournalConfig, error) {
	limit := 20
	if override, err := parseOptionalIntEnv("JOURNAL_HISTORY_LIMIT"); err != nil {
		return JournalConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return JournalConfig{}, fmt.Errorf("invalid JOURNAL_HISTORY_LIMIT value %d: must be positive", *override)
		}
		limit = *override
	}
	return JournalConfig{HistoryLimit: limit}, nil
}

// LogConfig 描述日志输出。
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
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

func parseOptionalUintEnv(key string) (*uint64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
