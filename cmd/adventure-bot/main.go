package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "adventure-bot",
	Short: "adventure-bot runs a fine-tuned educational choose-your-own-adventure chatbot",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// reinitialize the logger because we can now parse --log-level and co
		// from the command line flag
		initLogger()
	},
}

func initLogger() {
	err := InitLogger(&logConfig{
		Level:      viper.GetString("log-level"),
		LogFile:    viper.GetString("log-file"),
		LogFormat:  viper.GetString("log-format"),
		WithCaller: viper.GetBool("with-caller"),
	})
	cobra.CheckErr(err)
}

func initConfig() error {
	viper.SetEnvPrefix("adventure_bot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// the API key lives in the environment, supplied by the secret store
	_ = viper.BindEnv("api-key", "MISTRAL_API_KEY", "ADVENTURE_BOT_API_KEY")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return err
	}

	configPath := viper.GetString("config")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.adventure-bot")
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; ignore error
	} else if err != nil {
		return err
	}

	initLogger()

	log.Debug().
		Str("config", viper.ConfigFileUsed()).
		Msg("loaded configuration")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("with-caller", false, "Log caller")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (json, text)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default: stderr)")

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.adventure-bot/config.yaml)")

	rootCmd.PersistentFlags().String("model", "", "Model identifier, e.g. the fine-tuned model id")
	rootCmd.PersistentFlags().String("base-url", "", "Chat completion API base URL")
	rootCmd.PersistentFlags().Int("timeout", 0, "Completion call timeout in seconds")
	rootCmd.PersistentFlags().Float64("temperature", 0, "Sampling temperature")
	rootCmd.PersistentFlags().Int("max-response-tokens", 0, "Maximum response tokens")

	err := initConfig()
	cobra.CheckErr(err)

	rootCmd.AddCommand(NewChatCommand())
	rootCmd.AddCommand(NewAskCommand())
	rootCmd.AddCommand(NewTrainingCommand())
	rootCmd.AddCommand(NewTokensCommand())
}
