package persist

import (
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/jobtracker/internal/domain"
)

const day = 24 * time.Hour

// SeedApplications returns the first-run demo applications, dated relative
// to now.
func SeedApplications(now time.Time) []domain.Application {
	return []domain.Application{
		{
			ID:          uuid.NewString(),
			Company:     "TechCorp",
			Title:       "Frontend Developer",
			Status:      domain.StatusApplied,
			AppliedDate: now.Add(-5 * day),
			Notes:       "Applied through company website. Seems like a great opportunity to work with modern React technologies.",
			CreatedAt:   now.Add(-5 * day),
			UpdatedAt:   now.Add(-5 * day),
		},
		{
			ID:          uuid.NewString(),
			Company:     "StartupXYZ",
			Title:       "Full Stack Developer",
			Status:      domain.StatusInterviewing,
			AppliedDate: now.Add(-10 * day),
			Notes:       "Had initial phone screen. Technical interview scheduled for next week. Very excited about this opportunity!",
			CreatedAt:   now.Add(-10 * day),
			UpdatedAt:   now.Add(-2 * day),
		},
		{
			ID:          uuid.NewString(),
			Company:     "BigCorp",
			Title:       "Senior Developer",
			Status:      domain.StatusRejected,
			AppliedDate: now.Add(-15 * day),
			Notes:       "Unfortunately did not move forward. Feedback was positive but they went with someone with more years of experience.",
			CreatedAt:   now.Add(-15 * day),
			UpdatedAt:   now.Add(-7 * day),
		},
	}
}

type seedJob struct {
	title, company, location, employmentType, salary, description, createdBy string
	tags                                                                     []string
	ageDays                                                                  int
}

var seedJobTemplates = []seedJob{
	{"Senior Frontend Developer", "TechCorp", "San Francisco, CA", "Full-time", "$120k - $160k",
		"Join our dynamic team to build cutting-edge web applications using React and modern technologies.",
		"demo-company@example.com", []string{"React", "TypeScript", "JavaScript", "CSS"}, 0},
	{"Full Stack Engineer", "StartupXYZ", "New York, NY", "Full-time", "$100k - $140k",
		"Build scalable applications from frontend to backend in a fast-paced startup environment.",
		"demo-company@example.com", []string{"Node.js", "React", "PostgreSQL", "AWS"}, 2},
	{"UX/UI Designer", "DesignStudio", "Remote", "Contract", "$80 - $120/hr",
		"Create beautiful and intuitive user experiences for our growing portfolio of clients.",
		"design-company@example.com", []string{"Figma", "Sketch", "Prototyping", "User Research"}, 3},
	{"Backend Developer", "DataFlow Inc", "Austin, TX", "Full-time", "$110k - $150k",
		"Develop robust backend systems and APIs to handle large-scale data processing.",
		"backend-company@example.com", []string{"Python", "Django", "PostgreSQL", "Redis"}, 5},
	{"DevOps Engineer", "CloudTech", "Seattle, WA", "Full-time", "$130k - $170k",
		"Manage cloud infrastructure and implement CI/CD pipelines for high-availability applications.",
		"cloud-company@example.com", []string{"AWS", "Docker", "Kubernetes", "Terraform"}, 7},
	{"Mobile Developer", "MobileFirst", "Los Angeles, CA", "Full-time", "$105k - $145k",
		"Build cross-platform mobile applications using React Native and native technologies.",
		"mobile-company@example.com", []string{"React Native", "iOS", "Android", "JavaScript"}, 10},
	{"Data Scientist", "AI Innovations", "Boston, MA", "Full-time", "$125k - $165k",
		"Apply machine learning and statistical analysis to solve complex business problems.",
		"ai-company@example.com", []string{"Python", "Machine Learning", "TensorFlow", "SQL"}, 12},
	{"Product Manager", "ProductCorp", "Chicago, IL", "Full-time", "$115k - $155k",
		"Lead product strategy and work with cross-functional teams to deliver exceptional user experiences.",
		"product-company@example.com", []string{"Product Strategy", "Agile", "Analytics", "Leadership"}, 14},
	{"QA Engineer", "QualityFirst", "Denver, CO", "Full-time", "$85k - $115k",
		"Ensure software quality through comprehensive testing strategies and automation.",
		"qa-company@example.com", []string{"Automation Testing", "Selenium", "Jest", "Cypress"}, 16},
	{"Security Engineer", "SecureTech", "Washington, DC", "Full-time", "$135k - $175k",
		"Protect our systems and data through advanced security measures and threat analysis.",
		"security-company@example.com", []string{"Cybersecurity", "Penetration Testing", "SIEM", "Compliance"}, 18},
}

// SeedJobs returns the first-run demo job listings, posted relative to now.
func SeedJobs(now time.Time) []domain.Job {
	jobs := make([]domain.Job, 0, len(seedJobTemplates))
	for _, s := range seedJobTemplates {
		posted := now.Add(-time.Duration(s.ageDays) * day)
		jobs = append(jobs, domain.Job{
			ID:             uuid.NewString(),
			Title:          s.title,
			Company:        s.company,
			Location:       s.location,
			PostedDate:     posted,
			EmploymentType: s.employmentType,
			SalaryRange:    s.salary,
			Description:    s.description,
			Tags:           append([]string(nil), s.tags...),
			CreatedBy:      s.createdBy,
			CreatedAt:      posted,
			UpdatedAt:      posted,
		})
	}
	return jobs
}
