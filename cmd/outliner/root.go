package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Infer document titles and heading outlines from PDF files",
	Long: `Outliner infers a document title and a flat H1-H3 heading outline from
the positioned, font-annotated text of PDF files. It is built for offline
indexing pipelines that need structural metadata when no native outline
or bookmark data exists.

Headings are detected by combining numbering and keyword patterns across
several scripts with font-size and boldness signals; results are written
as one JSON record per document.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./outliner.yaml or ~/.outliner/outliner.yaml)",
	)
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")

	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires viper: defaults, optional config file, and OUTLINER_*
// environment variables.
func initConfig() error {
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("workers", 4)
	viper.SetDefault("max_headings", 100)

	viper.SetEnvPrefix("OUTLINER")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outliner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.outliner")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil // config file is optional unless named explicitly
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// initLogging installs the default slog logger at the configured level.
func initLogging() error {
	var level slog.Level
	switch strings.ToLower(viper.GetString("log_level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q", viper.GetString("log_level"))
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}
