package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/csscollect/internal/collector"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	FilesProcessed int `json:"files_processed"`
	FilesChanged   int `json:"files_changed"`
	FilesFailed    int `json:"files_failed"`
	Warnings       int `json:"warnings"`
}

// JSONFile represents the outcome for a single document
type JSONFile struct {
	File     string              `json:"file"`
	Changed  bool                `json:"changed"`
	Error    string              `json:"error,omitempty"`
	Warnings []collector.Warning `json:"warnings"`
}

// WriteJSON writes the run results as JSON
func WriteJSON(w io.Writer, results []FileResult) error {
	output := buildJSONOutput(results)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts results to JSONOutput
func buildJSONOutput(results []FileResult) JSONOutput {
	summary := JSONSummary{FilesProcessed: len(results)}
	files := make([]JSONFile, len(results))
	for i, res := range results {
		warnings := res.Warnings
		if warnings == nil {
			warnings = []collector.Warning{}
		}
		files[i] = JSONFile{
			File:     res.File,
			Changed:  res.Changed,
			Warnings: warnings,
		}
		if res.Err != nil {
			files[i].Error = res.Err.Error()
			summary.FilesFailed++
		}
		if res.Changed {
			summary.FilesChanged++
		}
		summary.Warnings += len(res.Warnings)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary:   summary,
		Files:     files,
	}
}
