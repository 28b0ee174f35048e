package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/osse101/jobboard/internal/handler"
	"github.com/osse101/jobboard/internal/validation"
	"github.com/osse101/jobboard/internal/worker"
)

const flagWorkers = "workers"

const defaultImportWorkers = 4

// importFile is the document accepted by `jobs import`
type importFile struct {
	Jobs []handler.CreateJobRequest `json:"jobs"`
}

// importResult is the outcome for one row of the file
type importResult struct {
	Row   int    `json:"row"`
	Title string `json:"title"`
	ID    int    `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func newImportJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create jobs in bulk from a JSON file",
		Long: `Create every job listed in a JSON file of the form {"jobs": [{...}, ...]}.
The file is checked against the import schema before anything is sent.
Rows are created concurrently and independently; one failure does not stop the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt(flagWorkers)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading import file: %w", err)
			}
			reqs, err := parseImportFile(data)
			if err != nil {
				return err
			}

			results := importJobs(cmd.Context(), reqs, workers)
			if err := printImportResults(cmd, results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed to import", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().Int(flagWorkers, defaultImportWorkers, "Number of concurrent create requests")
	return cmd
}

func parseImportFile(data []byte) ([]handler.CreateJobRequest, error) {
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.SchemaJobImport); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	var file importFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return file.Jobs, nil
}

// importJobs creates every request on the worker pool. Results keep file order.
func importJobs(ctx context.Context, reqs []handler.CreateJobRequest, workers int) []importResult {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]importResult, len(reqs))
	pool := worker.NewPool(workers, len(reqs))
	pool.Start(ctx)

	for i, req := range reqs {
		results[i] = importResult{Row: i + 1, Title: req.Title}
		res := &results[i]
		err := pool.Enqueue(ctx, worker.TaskFunc(func(ctx context.Context) error {
			job, err := apiClient.CreateJob(ctx, req)
			if err != nil {
				res.Error = err.Error()
				return err
			}
			res.ID = job.ID
			return nil
		}))
		if err != nil {
			res.Error = err.Error()
		}
	}
	pool.Stop()

	for i := range results {
		if results[i].ID == 0 && results[i].Error == "" {
			// Skipped by the pool after cancellation
			results[i].Error = context.Canceled.Error()
		}
	}
	return results
}

func printImportResults(cmd *cobra.Command, results []importResult) error {
	w := cmd.OutOrStdout()
	if outputFormat == outputJSON {
		return writeJSON(w, results)
	}

	data := pterm.TableData{{"Row", "Title", "Result"}}
	for _, r := range results {
		outcome := pterm.FgGreen.Sprint("created #" + strconv.Itoa(r.ID))
		if r.Error != "" {
			outcome = pterm.FgRed.Sprint(r.Error)
		}
		data = append(data, []string{strconv.Itoa(r.Row), r.Title, outcome})
	}
	return renderTable(w, data)
}
