package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/report"
	"github.com/spigell/resume-screener/internal/scoring"
	"github.com/spigell/resume-screener/internal/source"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the keywords extracted from the job description",
	Run: func(_ *cobra.Command, _ []string) {
		keywords()
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func keywords() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	reference, err := loadJobDescription(config)
	if err != nil {
		if errors.Is(err, source.ErrEmpty) {
			logger.Fatal("no job description provided", zap.Error(err))
		}
		logger.Fatal("loading the job description", zap.Error(err))
	}

	set := scoring.ExtractKeywords(reference)
	if set.Len() == 0 {
		logger.Warn("no keywords extracted from the job description")
	}

	console := report.NewConsole(os.Stdout)
	console.JobDescription(reference)
	console.Keywords(set)
}
