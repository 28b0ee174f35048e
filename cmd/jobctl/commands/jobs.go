package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/jobboard/internal/domain"
	"github.com/osse101/jobboard/internal/handler"
)

const (
	flagMinSalary = "min-salary"
	flagHasEquity = "has-equity"
	flagTitle     = "title"
	flagSalary    = "salary"
	flagEquity    = "equity"
	flagCompany   = "company"
)

func newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage jobs",
	}
	cmd.AddCommand(newListJobsCmd())
	cmd.AddCommand(newGetJobCmd())
	cmd.AddCommand(newCreateJobCmd())
	cmd.AddCommand(newUpdateJobCmd())
	cmd.AddCommand(newDeleteJobCmd())
	cmd.AddCommand(newImportJobsCmd())
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid job id %q: %w", arg, err)
	}
	return id, nil
}

func newListJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter domain.JobFilter
			flags := cmd.Flags()
			if flags.Changed(flagMinSalary) {
				v, _ := flags.GetInt(flagMinSalary)
				filter.MinSalary = &v
			}
			if flags.Changed(flagHasEquity) {
				v, _ := flags.GetBool(flagHasEquity)
				filter.HasEquity = &v
			}
			if flags.Changed(flagTitle) {
				v, _ := flags.GetString(flagTitle)
				filter.Title = &v
			}

			jobs, err := apiClient.ListJobs(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("error listing jobs: %w", err)
			}
			return printJobList(cmd.OutOrStdout(), jobs)
		},
	}
	cmd.Flags().Int(flagMinSalary, 0, "Only jobs paying at least this salary")
	cmd.Flags().Bool(flagHasEquity, false, "Only jobs offering equity")
	cmd.Flags().String(flagTitle, "", "Case-insensitive title substring")
	return cmd
}

func newGetJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a job with its company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			job, err := apiClient.GetJob(context.Background(), id)
			if err != nil {
				return fmt.Errorf("error fetching job: %w", err)
			}
			return printJobDetail(cmd.OutOrStdout(), job)
		},
	}
}

func newCreateJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			req := handler.CreateJobRequest{}
			req.Title, _ = flags.GetString(flagTitle)
			req.CompanyHandle, _ = flags.GetString(flagCompany)
			if flags.Changed(flagSalary) {
				v, _ := flags.GetInt(flagSalary)
				req.Salary = &v
			}
			if flags.Changed(flagEquity) {
				v, _ := flags.GetFloat64(flagEquity)
				req.Equity = &v
			}

			job, err := apiClient.CreateJob(context.Background(), req)
			if err != nil {
				return fmt.Errorf("error creating job: %w", err)
			}
			return printJob(cmd.OutOrStdout(), job)
		},
	}
	cmd.Flags().String(flagTitle, "", "Job title")
	cmd.Flags().Int(flagSalary, 0, "Yearly salary")
	cmd.Flags().Float64(flagEquity, 0, "Equity fraction between 0 and 1")
	cmd.Flags().String(flagCompany, "", "Handle of the company posting the job")
	_ = cmd.MarkFlagRequired(flagTitle)
	_ = cmd.MarkFlagRequired(flagCompany)
	return cmd
}

func newUpdateJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a job's title, salary or equity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var req handler.UpdateJobRequest
			if flags.Changed(flagTitle) {
				v, _ := flags.GetString(flagTitle)
				req.Title = &v
			}
			if flags.Changed(flagSalary) {
				v, _ := flags.GetInt(flagSalary)
				req.Salary = &v
			}
			if flags.Changed(flagEquity) {
				v, _ := flags.GetFloat64(flagEquity)
				req.Equity = &v
			}
			if req.Title == nil && req.Salary == nil && req.Equity == nil {
				return fmt.Errorf("at least one of --%s, --%s, --%s is required", flagTitle, flagSalary, flagEquity)
			}

			job, err := apiClient.UpdateJob(context.Background(), id, req)
			if err != nil {
				return fmt.Errorf("error updating job: %w", err)
			}
			return printJob(cmd.OutOrStdout(), job)
		},
	}
	cmd.Flags().String(flagTitle, "", "New title")
	cmd.Flags().Int(flagSalary, 0, "New salary")
	cmd.Flags().Float64(flagEquity, 0, "New equity fraction")
	return cmd
}

func newDeleteJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := apiClient.DeleteJob(context.Background(), id); err != nil {
				return fmt.Errorf("error deleting job: %w", err)
			}
			if outputFormat == outputJSON {
				return writeJSON(cmd.OutOrStdout(), handler.DeletedResponse{Deleted: id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted job %d\n", id)
			return nil
		},
	}
}
