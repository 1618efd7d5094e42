package export

import (
	"fmt"
	"time"
)

/* =========================================================
   Typed source rows per report kind
========================================================= */

// Record is one flat, display-ready worksheet row keyed by Column.Key.
type Record map[string]any

// ResultRow is one test attempt joined with student and test data.
type ResultRow struct {
	StudentName      string
	TestTitle        string
	Subject          string
	Score            int
	Percentage       float64
	PassingScore     float64
	TimeSpentSeconds int
	CompletedAt      *time.Time
}

func (r ResultRow) ToRecord() Record {
	status := "Failed"
	if r.Percentage >= r.PassingScore {
		status = "Passed"
	}
	return Record{
		"student_name": r.StudentName,
		"test_title":   r.TestTitle,
		"subject":      r.Subject,
		"score":        r.Score,
		"percentage":   r.Percentage,
		"status":       status,
		"time_spent":   fmt.Sprintf("%dm %ds", r.TimeSpentSeconds/60, r.TimeSpentSeconds%60),
		"completed_at": r.CompletedAt,
	}
}

// PaymentRow is one payment transaction joined with student and course data.
type PaymentRow struct {
	StudentName   string
	Subject       string
	Amount        int64
	PaymentMonth  int
	PaymentYear   int
	PaymentDate   time.Time
	PaymentMethod string
	Notes         *string
}

func (r PaymentRow) ToRecord() Record {
	var notes any
	if r.Notes != nil {
		notes = *r.Notes
	}
	return Record{
		"student_name":   r.StudentName,
		"subject":        r.Subject,
		"amount":         r.Amount,
		"month_year":     monthYear(r.PaymentMonth, r.PaymentYear),
		"payment_date":   r.PaymentDate,
		"payment_method": r.PaymentMethod,
		"notes":          notes,
	}
}

// StudentRow is one student joined with their payment summary.
type StudentRow struct {
	FullName      string
	Phone         string
	ParentPhone   string
	GroupName     string
	EnrolledAt    time.Time
	TotalCourses  int
	TotalOverdue  int64
	PaymentStatus string // summary status enum value
}

func (r StudentRow) ToRecord() Record {
	return Record{
		"full_name":      r.FullName,
		"phone":          r.Phone,
		"parent_phone":   r.ParentPhone,
		"group_name":     r.GroupName,
		"enrolled_at":    r.EnrolledAt,
		"total_courses":  r.TotalCourses,
		"total_overdue":  r.TotalOverdue,
		"payment_status": PaymentStatusLabel(r.PaymentStatus),
	}
}

var paymentStatusLabels = map[string]string{
	"all_paid":   "All Paid",
	"partial":    "Partial",
	"overdue":    "Overdue",
	"no_courses": "No Courses",
}

// PaymentStatusLabel maps the summary status enum to its display label,
// falling back to the raw value for anything unrecognized.
func PaymentStatusLabel(status string) string {
	if label, ok := paymentStatusLabels[status]; ok {
		return label
	}
	return status
}

func monthYear(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	return time.Month(month).String()[:3] + fmt.Sprintf(" %04d", year)
}
