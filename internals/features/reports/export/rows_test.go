package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultRowDerivedFields(t *testing.T) {
	completed := time.Date(2026, time.March, 3, 14, 0, 0, 0, time.UTC)

	passed := ResultRow{
		StudentName:      "Aziza Karimova",
		TestTitle:        "Mock IELTS Reading",
		Subject:          "English",
		Score:            34,
		Percentage:       85,
		PassingScore:     60,
		TimeSpentSeconds: 330,
		CompletedAt:      &completed,
	}.ToRecord()

	assert.Equal(t, "Passed", passed["status"])
	assert.Equal(t, "5m 30s", passed["time_spent"])

	failed := ResultRow{Percentage: 59.9, PassingScore: 60}.ToRecord()
	assert.Equal(t, "Failed", failed["status"])
	assert.Equal(t, "0m 0s", failed["time_spent"])

	// exactly at the passing score counts as passed
	edge := ResultRow{Percentage: 60, PassingScore: 60}.ToRecord()
	assert.Equal(t, "Passed", edge["status"])
}

func TestPaymentRowMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  string
	}{
		{name: "january", month: 1, year: 2026, want: "Jan 2026"},
		{name: "december", month: 12, year: 2025, want: "Dec 2025"},
		{name: "september abbreviates to three letters", month: 9, year: 2026, want: "Sep 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := PaymentRow{PaymentMonth: tt.month, PaymentYear: tt.year}.ToRecord()
			assert.Equal(t, tt.want, rec["month_year"])
		})
	}
}

func TestPaymentRowNilNotes(t *testing.T) {
	rec := PaymentRow{}.ToRecord()
	assert.Nil(t, rec["notes"])
	assert.Equal(t, "", FormatCell(rec["notes"], FormatText))
}

func TestPaymentStatusLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "all_paid", want: "All Paid"},
		{in: "partial", want: "Partial"},
		{in: "overdue", want: "Overdue"},
		{in: "no_courses", want: "No Courses"},
		{in: "something_else", want: "something_else"},
	}
	for _, tt := range tests {
		if got := PaymentStatusLabel(tt.in); got != tt.want {
			t.Errorf("PaymentStatusLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStudentRowRecordKeysMatchColumns(t *testing.T) {
	rec := StudentRow{
		FullName:      "Jasur Toshmatov",
		Phone:         "+998901234567",
		GroupName:     "B2-evening",
		EnrolledAt:    time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		TotalCourses:  2,
		TotalOverdue:  150000,
		PaymentStatus: "overdue",
	}.ToRecord()

	for _, col := range StudentColumns {
		_, ok := rec[col.Key]
		assert.Truef(t, ok, "StudentRow record is missing key %q", col.Key)
	}
	assert.Equal(t, "Overdue", rec["payment_status"])
}
