package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/spigell/resume-screener/internal/source"
)

func setConfig(t *testing.T, values map[string]interface{}) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetDefault("top", defaultTop)
	for key, value := range values {
		viper.Set(key, value)
	}
}

func TestGetConfig(t *testing.T) {
	setConfig(t, map[string]interface{}{
		"job-description": "Python developer",
		"resumes":         []string{"in/", "extra.pdf"},
		"workers":         4,
		"output.json":     "out/results.json",
		"output.pdf":      "out/report.pdf",
	})

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Top != defaultTop || config.Workers != 4 || len(config.Resumes) != 2 {
		t.Fatalf("unexpected config: %+v", config)
	}
	if config.Output.JSON != "out/results.json" || config.Output.PDF != "out/report.pdf" {
		t.Fatalf("unexpected output: %+v", config.Output)
	}
}

func TestGetConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]interface{}
	}{
		{name: "too many workers", values: map[string]interface{}{"workers": 1000}},
		{name: "negative top", values: map[string]interface{}{"top": -1}},
		{name: "wrong csv extension", values: map[string]interface{}{"output.csv": "results.xlsx"}},
		{name: "wrong pdf extension", values: map[string]interface{}{"output.pdf": "report.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setConfig(t, tt.values)

			if _, err := getConfig(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadJobDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.md")
	if err := os.WriteFile(path, []byte("Go developer"), 0o644); err != nil {
		t.Fatalf("writing job description: %v", err)
	}

	text, err := loadJobDescription(&Config{JobDescription: "ignored", JobDescriptionFile: path})
	if err != nil || text != "Go developer" {
		t.Fatalf("expected file text, got %q, %v", text, err)
	}

	text, err = loadJobDescription(&Config{JobDescription: "Python developer"})
	if err != nil || text != "Python developer" {
		t.Fatalf("expected inline text, got %q, %v", text, err)
	}

	if _, err := loadJobDescription(&Config{JobDescription: "  "}); !errors.Is(err, source.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
