package domain

// Job represents a posted position owned by a company
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// JobSummary is the list projection of a job, with the owning company's name joined in
type JobSummary struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
	CompanyName   string   `json:"companyName"`
}

// JobDetail is a job with the full company record embedded in place of the handle
type JobDetail struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Salary  *int     `json:"salary"`
	Equity  *float64 `json:"equity"`
	Company Company  `json:"company"`
}

// NewJob holds the values for inserting a job
type NewJob struct {
	Title         string
	Salary        *int
	Equity        *float64
	CompanyHandle string
}

// JobFilter narrows a job listing. Nil fields impose no constraint.
type JobFilter struct {
	MinSalary *int    // inclusive lower bound on salary
	HasEquity *bool   // only true restricts to equity > 0
	Title     *string // case-insensitive substring
}

// IsEmpty reports whether the filter imposes no constraint at all
func (f JobFilter) IsEmpty() bool {
	return f.MinSalary == nil && !f.WantsEquity() && f.Title == nil
}

// WantsEquity reports whether listing must be restricted to jobs with equity
func (f JobFilter) WantsEquity() bool {
	return f.HasEquity != nil && *f.HasEquity
}

// JobUpdate is a partial update. Only non-nil fields are written.
type JobUpdate struct {
	Title  *string
	Salary *int
	Equity *float64
}

// IsEmpty reports whether the update touches no column
func (u JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Salary == nil && u.Equity == nil
}
