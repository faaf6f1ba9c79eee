package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	LLM     LLMConfig     `yaml:"llm"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Algolia AlgoliaConfig `yaml:"algolia"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type CORSConfig struct {
	AllowOrigins     []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods" mapstructure:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers" mapstructure:"allow_headers"`
	ExposeHeaders    []string `yaml:"expose_headers" mapstructure:"expose_headers"`
	AllowCredentials bool     `yaml:"allow_credentials" mapstructure:"allow_credentials"`
}

// LLMConfig selects which provider backs phrase extraction.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "gemini"
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	Model  string `yaml:"model"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	Model  string `yaml:"model"`
}

// AlgoliaConfig carries the read-only search credentials. The key must be a
// search-only key; this service never writes to the index.
type AlgoliaConfig struct {
	AppID     string `yaml:"app_id" mapstructure:"app_id"`
	SearchKey string `yaml:"search_key" mapstructure:"search_key"`
	IndexName string `yaml:"index_name" mapstructure:"index_name"`
}

func LoadConfig(configPath string, envPath string) (*Config, error) {
	// Load .env file first so viper's env lookups see it
	if err := godotenv.Load(envPath); err != nil {
		return nil, err
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Credentials come from the environment, not the yaml file
	_ = viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("algolia.app_id", "ALGOLIA_APP_ID")
	_ = viper.BindEnv("algolia.search_key", "ALGOLIA_SEARCH_KEY")
	_ = viper.BindEnv("algolia.index_name", "ALGOLIA_INDEX_NAME")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Unmarshal does not see env-only keys; read the credentials explicitly
	// so env > file precedence still applies.
	config.OpenAI.APIKey = viper.GetString("openai.api_key")
	config.Gemini.APIKey = viper.GetString("gemini.api_key")
	config.Algolia.AppID = viper.GetString("algolia.app_id")
	config.Algolia.SearchKey = viper.GetString("algolia.search_key")
	config.Algolia.IndexName = viper.GetString("algolia.index_name")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects a config with a missing credential at startup instead of
// letting the first request fail with an opaque upstream error.
func (c *Config) Validate() error {
	if c.Algolia.AppID == "" {
		return fmt.Errorf("config: missing algolia app id")
	}
	if c.Algolia.SearchKey == "" {
		return fmt.Errorf("config: missing algolia search key")
	}
	if c.Algolia.IndexName == "" {
		return fmt.Errorf("config: missing algolia index name")
	}

	switch c.LLM.Provider {
	case "", "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("config: missing openai api key")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("config: missing gemini api key")
		}
	default:
		return fmt.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}

	return nil
}
