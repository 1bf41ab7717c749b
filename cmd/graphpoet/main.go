// Package main is the entry point for the graphpoet CLI.
//
// graphpoet builds a word graph from a corpus file and inserts bridge words
// into sentences read from the command line or stdin.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/internal/config"
	"github.com/katalvlaran/graphpoet/poet"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the graphpoet CLI.
var rootCmd = &cobra.Command{
	Use:   "graphpoet",
	Short: "Embellish sentences with bridge words from a corpus word graph",
	Long: `graphpoet reads a corpus, records how often each word follows another,
and uses that graph to insert a bridge word between two input words whenever
the corpus links them through exactly one intermediate word.

Settings come from flags, GRAPHPOET_* environment variables, or a
graphpoet.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults(viper.GetViper(), poet.DefaultMaxTokenSize)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./graphpoet.yaml or ~/.config/graphpoet/graphpoet.yaml)")
	rootCmd.PersistentFlags().String("corpus", "", "path of the corpus text file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int("max-token-size", poet.DefaultMaxTokenSize, "longest accepted corpus token in bytes")
	rootCmd.PersistentFlags().Int("max-sentence-size", config.DefaultMaxSentenceSize, "longest accepted stdin sentence line in bytes")

	mustBind(config.KeyCorpus, "corpus")
	mustBind(config.KeyLogLevel, "log-level")
	mustBind(config.KeyMaxTokenSize, "max-token-size")
	mustBind(config.KeyMaxSentenceSize, "max-sentence-size")
}

func mustBind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("graphpoet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "graphpoet"))
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadPoet resolves configuration, builds the logger and the Poet.
// The returned logger must be synced by the caller.
func loadPoet() (*poet.Poet, config.Config, *zap.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	p, err := poet.NewFromFile(cfg.Corpus,
		poet.WithLogger(logger.Named("poet")),
		poet.WithMaxTokenSize(cfg.MaxTokenSize),
	)
	if err != nil {
		logger.Error("building word graph", zap.String("corpus", cfg.Corpus), zap.Error(err))
		_ = logger.Sync()

		return nil, config.Config{}, nil, err
	}

	return p, cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
