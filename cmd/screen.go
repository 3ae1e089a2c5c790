package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/filtering"
	"github.com/spigell/resume-screener/internal/ingest"
	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/report"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/source"
)

const (
	PromptDetails             = "Show candidate details"
	PromptResultsToFile       = "Dump results to file"
	PromptAppendToExcludeFile = "Append all candidates to exclude file"
	PromptExit                = "Exit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var screenCmd = &cobra.Command{
	Use:   "screen [resume files or directories...]",
	Short: "Score resumes against a job description and rank them",
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("exclude-file", "e", "", "special file with candidates to exclude. Default is unset.")
	screenCmd.Flags().IntP("workers", "w", 0, "resumes read and scored at once (default is the number of CPUs)")
	screenCmd.Flags().Bool("keep-empty", false, "score resumes without any text instead of dropping them")
	screenCmd.Flags().IntP("top", "n", defaultTop, "rows in the ranking table, 0 prints none")
	screenCmd.Flags().String("output-json", "", "write results to a JSON file")
	screenCmd.Flags().String("output-csv", "", "write the detailed breakdown to a CSV file")
	screenCmd.Flags().String("output-xlsx", "", "write an Excel workbook")
	screenCmd.Flags().String("output-pdf", "", "write a printable PDF report")
	screenCmd.Flags().BoolP("yes", "y", false, "do not show the menu after the run")

	viper.BindPFlag("exclude-file", screenCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("workers", screenCmd.Flags().Lookup("workers"))
	viper.BindPFlag("keep-empty", screenCmd.Flags().Lookup("keep-empty"))
	viper.BindPFlag("top", screenCmd.Flags().Lookup("top"))
	viper.BindPFlag("output.json", screenCmd.Flags().Lookup("output-json"))
	viper.BindPFlag("output.csv", screenCmd.Flags().Lookup("output-csv"))
	viper.BindPFlag("output.xlsx", screenCmd.Flags().Lookup("output-xlsx"))
	viper.BindPFlag("output.pdf", screenCmd.Flags().Lookup("output-pdf"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	reference, err := loadJobDescription(config)
	if err != nil {
		if errors.Is(err, source.ErrEmpty) {
			logger.Fatal(screening.ErrNoReference.Error(),
				zap.Error(err),
				zap.String("hint", "set job-description or job-description-file in the config, or pass -t/-f"),
			)
		}
		logger.Fatal("loading the job description", zap.Error(err))
	}

	console := report.NewConsole(os.Stdout)
	console.JobDescription(reference)

	paths := append(append([]string{}, config.Resumes...), args...)
	if len(paths) == 0 {
		logger.Fatal("no resumes to screen",
			zap.String("hint", "pass resume files or directories as arguments or set resumes in the config"),
		)
	}

	candidates, failures, err := ingest.New(logger, config.Workers).Collect(ctx, paths)
	if err != nil {
		logger.Fatal("reading resumes", zap.Error(err))
	}

	filters := prepareFilters(config, logger)
	logger.Debug("filters", zap.Any("statuses", filters.Describe()))

	candidates, _, err = filters.RunFilters(ctx, candidates)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	results, summary, err := screening.Run(ctx, reference, candidates,
		screening.WithWorkers(config.Workers),
		screening.WithLogger(logger),
	)
	switch {
	case errors.Is(err, screening.ErrNoCandidates):
		logger.Fatal("no resumes to screen",
			zap.Int("unreadable", len(failures)),
			zap.String("hint", "supported formats are "+fmt.Sprint(ingest.Extensions())),
		)
	case err != nil:
		logger.Fatal("screening failed", zap.Error(err))
	}

	if err := console.Summary(summary); err != nil {
		logger.Fatal("printing the summary", zap.Error(err))
	}
	if config.Top > 0 {
		if err := console.Table(results, config.Top); err != nil {
			logger.Fatal("printing the ranking", zap.Error(err))
		}
	}

	written, err := report.WriteFiles(config.Output, results, summary)
	for _, path := range written {
		logger.Info("report written", zap.String("filename", path))
	}
	if err != nil {
		logger.Fatal("writing reports", zap.Error(err))
	}

	if cmd.Flag("yes").Value.String() == "true" {
		return
	}

	items := []string{PromptDetails, PromptResultsToFile}
	if config.ExcludeFile != "" {
		items = append(items, PromptAppendToExcludeFile)
	}
	prompt := promptui.Select{
		Label: "What next?",
		Items: append(items, PromptExit),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, console, results, candidates); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, console *report.Console, results *screening.Results, candidates *screening.Candidates) error {
	switch action {
	case PromptDetails:
		return showDetails(console, results)
	case PromptResultsToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(config.ExcludeFile, candidates, logger)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showDetails(console *report.Console, results *screening.Results) error {
	items := make([]string, 0, results.Len()+1)
	for i, record := range results.Records {
		items = append(items, fmt.Sprintf("%d. %s (%.2f)", i+1, record.CandidateID, record.Overall))
	}

	detailsPrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
		Size:  10,
	}

	for {
		index, _, err := detailsPrompt.Run()
		if err != nil {
			return err
		}

		if index >= results.Len() {
			return nil
		}

		if err := console.Details(results.Records[index]); err != nil {
			return err
		}
	}
}

func appendToExcludeFile(path string, candidates *screening.Candidates, logger *zap.Logger) error {
	excluded, err := screening.GetExcludedFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		excluded, err = &screening.ExcludedCandidates{}, nil
	}
	if err != nil {
		return err
	}

	excluded.Append(candidates.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	logger.Info("appended to exclude file",
		zap.String("filename", path),
		zap.Int("count", candidates.Len()),
	)
	return nil
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	steps := []filtering.Filter{
		filtering.NewDuplicateSource(),
		filtering.NewEmptyText(),
		filtering.NewExcludeFile(config.ExcludeFile),
	}

	filters := filtering.New(steps, logger)
	if config.KeepEmpty {
		filters.DisableByName(filtering.EmptyTextName, "keep-empty is set")
	}
	return filters
}
