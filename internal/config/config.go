package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Placeholder keys shipped in .env.example. They never reach the provider.
var placeholderKeys = map[string]bool{
	"your_gemini_api_key_here": true,
	"your_openai_api_key_here": true,
}

type Config struct {
	Server ServerConfig
	AI     AIConfig
	Upload UploadConfig
	Qdrant QdrantConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AIConfig struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	EmbedModel   string
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
	MaxAttempts  int
	Temperature  float32
}

type UploadConfig struct {
	MaxResumeSize int64
	MinResumeText int
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
	Limit      int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel:   getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:      getEnvAsDuration("AI_TIMEOUT", "20s"),
			MaxAttempts:  getEnvAsInt("AI_MAX_ATTEMPTS", 1),
			Temperature:  getEnvAsFloat32("AI_TEMPERATURE", 0.4),
		},
		Upload: UploadConfig{
			MaxResumeSize: getEnvAsInt64("MAX_RESUME_SIZE", 5*1024*1024),
			MinResumeText: getEnvAsInt("MIN_RESUME_TEXT", 50),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "virtual_panel_guides"),
			Limit:      getEnvAsInt("RAG_LIMIT", 3),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// APIKey returns the credential for the selected provider.
func (a AIConfig) APIKey() string {
	if a.Provider == ProviderOpenAI {
		return a.OpenAIAPIKey
	}
	return a.GeminiAPIKey
}

// Enabled reports whether the model may be called at all. An empty or
// placeholder key sends every request straight to the fallbacks.
func (a AIConfig) Enabled() bool {
	key := strings.TrimSpace(a.APIKey())
	return key != "" && !placeholderKeys[key]
}

func (q QdrantConfig) Enabled() bool {
	return q.URL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
