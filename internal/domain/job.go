package domain

import "time"

// Job is a job listing posted by a company account. CreatedBy holds the
// email of the posting account.
type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location,omitempty"`
	PostedDate     time.Time `json:"postedDate"`
	EmploymentType string    `json:"employmentType"`
	SalaryRange    string    `json:"salaryRange,omitempty"`
	Description    string    `json:"description"`
	Tags           []string  `json:"tags"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// JobDraft is the raw job form. Tags is a comma-separated list.
type JobDraft struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	PostedDate     string `json:"postedDate"`
	EmploymentType string `json:"employmentType"`
	SalaryRange    string `json:"salaryRange"`
	Description    string `json:"description"`
	Tags           string `json:"tags"`
}
