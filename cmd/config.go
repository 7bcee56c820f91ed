package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/proposta-ai/propgen/internal/config"
)

const (
	configName = ".propgen"
	envPrefix  = "PROPGEN"
)

// initConfig reads the config file and environment. Precedence: flags >
// env (PROPGEN_*) > config file > defaults.
func initConfig() {
	// A .env file is optional; missing is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file is a supported setup; anything else should be seen.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			cobra.CheckErr(err)
		}
	}

	setupLogging()
}

// loadSettings resolves the full runtime settings from viper.
func loadSettings() (*config.Settings, error) {
	return config.Load(viper.GetViper())
}
