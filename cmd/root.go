package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillswap-app/skillswap/internal/ai/gemini"
	"github.com/skillswap-app/skillswap/internal/logger"
	"github.com/skillswap-app/skillswap/internal/secrets"
	"github.com/skillswap-app/skillswap/internal/session"
	"github.com/skillswap-app/skillswap/internal/skills"
)

const (
	app = "skillswap"

	// The one credential the app knows about.
	apiKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	Listen string    `mapstructure:"listen"`
	AI     *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillswap is a skill-exchange app with AI match suggestions and chat partners",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillswap.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional; the app runs fine on defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	return config, nil
}

// newSession wires the candidate pool and the Gemini clients into a fresh
// session. A missing api key does not abort startup: the clients are built
// anyway and every AI call degrades to its safe default.
func newSession(ctx context.Context, config *Config, zlog *zap.Logger) *session.Session {
	gcfg := config.AI.Gemini

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		File:  gcfg.APIKeyFile,
		Env:   apiKeyEnv,
	})
	if err != nil {
		zlog.Warn("gemini api key unavailable",
			zap.Error(err),
			zap.String("hint", "set "+apiKeyEnv+" or the ai.gemini.api-key-file config key"),
		)
	}

	generator := gemini.NewGenerator(ctx, apiKey, gcfg.Model, zlog)

	aiLogger := logger.WithCommonFields(zlog, "gemini", generator.Model())

	pool := skills.DefaultPool()
	matcher := gemini.NewMatcher(generator, pool, aiLogger, gcfg.MaxLogLength)
	replier := gemini.NewReplier(generator, aiLogger, gcfg.MaxLogLength)

	return session.New(pool, matcher, replier, zlog)
}
