package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/osse101/jobboard/internal/domain"
)

const notAvailable = "n/a"

// FormatSalary renders a salary as dollars with thousands separators
func FormatSalary(salary int) string {
	return "$" + humanize.Comma(int64(salary))
}

// salaryColor picks the display band for a salary
func salaryColor(salary int) pterm.Color {
	switch {
	case salary >= 400000:
		return pterm.FgGreen
	case salary >= 300000:
		return pterm.FgLightGreen
	case salary >= 100000:
		return pterm.FgYellow
	default:
		return pterm.FgRed
	}
}

// ColorizeSalary formats a salary and colors it by band. Nil salaries render as n/a.
func ColorizeSalary(salary *int) string {
	if salary == nil {
		return pterm.FgDarkGray.Sprint(notAvailable)
	}
	return salaryColor(*salary).Sprint(FormatSalary(*salary))
}

// FormatEquity renders an equity fraction as a percentage
func FormatEquity(equity *float64) string {
	if equity == nil {
		return notAvailable
	}
	return humanize.FtoaWithDigits(*equity*100, 2) + "%"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	return nil
}

func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("error rendering table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func printJobList(w io.Writer, jobs []domain.JobSummary) error {
	if outputFormat == outputJSON {
		return writeJSON(w, jobs)
	}
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No jobs found")
		return err
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Salary", "Equity"}}
	for _, j := range jobs {
		data = append(data, []string{
			strconv.Itoa(j.ID),
			j.Title,
			j.CompanyName,
			ColorizeSalary(j.Salary),
			FormatEquity(j.Equity),
		})
	}
	return renderTable(w, data)
}

func printJob(w io.Writer, job *domain.Job) error {
	if outputFormat == outputJSON {
		return writeJSON(w, job)
	}
	return renderTable(w, pterm.TableData{
		{"ID", "Title", "Company", "Salary", "Equity"},
		{strconv.Itoa(job.ID), job.Title, job.CompanyHandle, ColorizeSalary(job.Salary), FormatEquity(job.Equity)},
	})
}

func printJobDetail(w io.Writer, job *domain.JobDetail) error {
	if outputFormat == outputJSON {
		return writeJSON(w, job)
	}

	employees := notAvailable
	if job.Company.NumEmployees != nil {
		employees = humanize.Comma(int64(*job.Company.NumEmployees))
	}
	return renderTable(w, pterm.TableData{
		{"Field", "Value"},
		{"ID", strconv.Itoa(job.ID)},
		{"Title", job.Title},
		{"Salary", ColorizeSalary(job.Salary)},
		{"Equity", FormatEquity(job.Equity)},
		{"Company", job.Company.Name + " (" + job.Company.Handle + ")"},
		{"Employees", employees},
		{"About", job.Company.Description},
	})
}
