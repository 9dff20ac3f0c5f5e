package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr           string
	LogLevel       string
	LogFormat      string
	JWTSecret      string
	FrontendURL    string
	AllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	Spotify     SpotifyConfig
	OpenAI      OpenAIConfig
	GoogleBooks GoogleBooksConfig
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type GoogleBooksConfig struct {
	APIKey string
	RPS    int
}

// Load reads configuration from the environment, with .env.local as a
// development convenience. Secrets have no defaults and fail startup when
// absent.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("SPOTIFY_REDIRECT_URL", "http://localhost:8080/api/auth/callback")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("GOOGLE_BOOKS_RPS", 5)

	cfg := &Config{
		Addr:           v.GetString("APP_ADDR"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("SPOTIFY_CLIENT_ID"),
			ClientSecret: v.GetString("SPOTIFY_CLIENT_SECRET"),
			RedirectURL:  v.GetString("SPOTIFY_REDIRECT_URL"),
		},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("OPENAI_API_KEY"),
			Model:  v.GetString("OPENAI_MODEL"),
		},
		GoogleBooks: GoogleBooksConfig{
			APIKey: v.GetString("GOOGLE_BOOKS_API_KEY"),
			RPS:    v.GetInt("GOOGLE_BOOKS_RPS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Spotify.ClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.Spotify.ClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
