package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-screener/internal/ingest"
	"github.com/spigell/resume-screener/internal/report"
	"github.com/spigell/resume-screener/internal/source"
)

const (
	app       = "resume-screener"
	envPrefix = "SCREENER"

	defaultTop = 10
)

type Config struct {
	JobDescription     string         `mapstructure:"job-description"`
	JobDescriptionFile string         `mapstructure:"job-description-file"`
	Resumes            []string       `mapstructure:"resumes"`
	ExcludeFile        string         `mapstructure:"exclude-file"`
	Workers            int            `mapstructure:"workers" validate:"gte=0,lte=256"`
	KeepEmpty          bool           `mapstructure:"keep-empty"`
	Top                int            `mapstructure:"top" validate:"gte=0,lte=1000"`
	Output             report.Outputs `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener ranks resumes against a job description by keyword and category scores",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("job-description", "t", "", "job description text")
	rootCmd.PersistentFlags().StringP("job-description-file", "f", "", "file with the job description (pdf, docx, txt, md, html)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("job-description", rootCmd.PersistentFlags().Lookup("job-description"))
	viper.BindPFlag("job-description-file", rootCmd.PersistentFlags().Lookup("job-description-file"))

	viper.SetDefault("top", defaultTop)
	viper.SetDefault("resumes", []string{})
	viper.SetDefault("output.json", "")
	viper.SetDefault("output.csv", "")
	viper.SetDefault("output.xlsx", "")
	viper.SetDefault("output.pdf", "")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	// Only commands reading a job description need a config.
	if screenCmd.CalledAs() == "" && keywordsCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Flags and environment are enough without a config file,
		// but an explicitly given one must be readable.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}

// loadJobDescription returns the job description text, read from a file when
// one is configured.
func loadJobDescription(config *Config) (string, error) {
	return source.Load(source.Source{
		Name:  "job description",
		Value: config.JobDescription,
		File:  config.JobDescriptionFile,
	}, ingest.ReadFile)
}
