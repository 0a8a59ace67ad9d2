package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabasePath       string `mapstructure:"DATABASE_PATH"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	GroqAPIKey     string `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL    string `mapstructure:"GROQ_BASE_URL"`
	ReasoningModel string `mapstructure:"REASONING_MODEL"`

	ReasoningProvider string `mapstructure:"REASONING_PROVIDER"`

	VisionProvider string `mapstructure:"VISION_PROVIDER"`
	VisionModel    string `mapstructure:"VISION_MODEL"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string `mapstructure:"GEMINI_MODEL"`

	TTSURL      string `mapstructure:"TTS_URL"`
	TTSLanguage string `mapstructure:"TTS_LANGUAGE"`

	SampleCount          int    `mapstructure:"SAMPLE_COUNT"`
	SampleTimeoutSeconds int    `mapstructure:"SAMPLE_TIMEOUT_SECONDS"`
	SelectionStrategy    string `mapstructure:"SELECTION_STRATEGY"`

	ClassifierPolicyFile string `mapstructure:"CLASSIFIER_POLICY_FILE"`
	ClassifierOptOut     bool   `mapstructure:"CLASSIFIER_OPT_OUT"`

	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("PORT", "")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("DATABASE_PATH", "./data/mathflow.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174,http://localhost:3000")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("REASONING_MODEL", "openai/gpt-oss-20b")
	viper.SetDefault("REASONING_PROVIDER", "groq")
	viper.SetDefault("VISION_PROVIDER", "groq")
	viper.SetDefault("VISION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("TTS_URL", "https://translate.google.com/translate_tts")
	viper.SetDefault("TTS_LANGUAGE", "fr")
	viper.SetDefault("SAMPLE_COUNT", 3)
	viper.SetDefault("SAMPLE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SELECTION_STRATEGY", "first")
	viper.SetDefault("CLASSIFIER_POLICY_FILE", "")
	viper.SetDefault("CLASSIFIER_OPT_OUT", false)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 120)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ListenAddr prefers PORT (set by most PaaS runtimes) over APP_PORT.
func (c *Config) ListenAddr() string {
	if p := strings.TrimSpace(c.Port); p != "" {
		return ":" + p
	}
	port := c.AppPort
	if port == 0 {
		port = 8000
	}
	return ":" + strconv.Itoa(port)
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) SampleTimeout() time.Duration {
	if c.SampleTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.SampleTimeoutSeconds) * time.Second
}

func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
