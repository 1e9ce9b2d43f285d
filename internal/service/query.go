package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/msomdec/jobtracker/internal/domain"
)

// Sort orders for application lists.
const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
	SortCompany  = "company"
	SortStatus   = "status"
)

// ApplicationQuery filters and orders an application list. An empty Status
// or "all" matches every status.
type ApplicationQuery struct {
	Search string
	Status string
	Sort   string
}

// Validate rejects unknown status filters and sort orders.
func (q ApplicationQuery) Validate() error {
	if q.Status != "" && q.Status != "all" && !domain.ApplicationStatus(q.Status).Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, q.Status)
	}
	switch q.Sort {
	case "", SortDateDesc, SortDateAsc, SortCompany, SortStatus:
		return nil
	}
	return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, q.Sort)
}

// Apply returns the matching applications in a new slice. apps is not
// reordered.
func (q ApplicationQuery) Apply(apps []domain.Application) []domain.Application {
	term := strings.ToLower(q.Search)
	out := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if term != "" && !contains(app.Company, term) && !contains(app.Title, term) {
			continue
		}
		if q.Status != "" && q.Status != "all" && string(app.Status) != q.Status {
			continue
		}
		out = append(out, app)
	}

	switch q.Sort {
	case SortDateAsc:
		slices.SortStableFunc(out, func(a, b domain.Application) int { return a.AppliedDate.Compare(b.AppliedDate) })
	case SortCompany:
		slices.SortStableFunc(out, func(a, b domain.Application) int {
			return cmp.Compare(strings.ToLower(a.Company), strings.ToLower(b.Company))
		})
	case SortStatus:
		slices.SortStableFunc(out, func(a, b domain.Application) int { return cmp.Compare(a.Status, b.Status) })
	default:
		slices.SortStableFunc(out, func(a, b domain.Application) int { return b.AppliedDate.Compare(a.AppliedDate) })
	}
	return out
}

// ApplicationStats counts applications per status.
type ApplicationStats struct {
	Total        int `json:"total"`
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offers       int `json:"offers"`
	Rejected     int `json:"rejected"`
}

func countApplications(apps []domain.Application) ApplicationStats {
	st := ApplicationStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case domain.StatusApplied:
			st.Applied++
		case domain.StatusInterviewing:
			st.Interviewing++
		case domain.StatusOffer:
			st.Offers++
		case domain.StatusRejected:
			st.Rejected++
		}
	}
	return st
}

// JobStats summarizes one company's listings.
type JobStats struct {
	Total     int `json:"total"`
	ThisMonth int `json:"thisMonth"`
}

func countJobs(jobs []domain.Job, now time.Time) JobStats {
	st := JobStats{Total: len(jobs)}
	for _, job := range jobs {
		if job.PostedDate.Year() == now.Year() && job.PostedDate.Month() == now.Month() {
			st.ThisMonth++
		}
	}
	return st
}

func contains(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}
