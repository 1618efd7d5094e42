package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	courseModel "bilimcenter_backend/internals/features/academics/courses/model"
	model "bilimcenter_backend/internals/features/finance/payments/model"
)

func statusRow(status model.MonthlyStatus, remaining int64) model.MonthlyPaymentStatus {
	return model.MonthlyPaymentStatus{
		StudentCourseID: uuid.New(),
		RequiredAmount:  500000,
		PaidAmount:      500000 - remaining,
		RemainingAmount: remaining,
		Status:          status,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		total int
		rows  []model.MonthlyPaymentStatus
		want  StudentPaymentSummary
	}{
		{
			name:  "no courses",
			total: 0,
			want:  StudentPaymentSummary{Status: SummaryNoCourses},
		},
		{
			name:  "single course fully paid",
			total: 1,
			rows:  []model.MonthlyPaymentStatus{statusRow(model.MonthlyStatusPaid, 0)},
			want:  StudentPaymentSummary{TotalCourses: 1, PaidCourses: 1, Status: SummaryAllPaid},
		},
		{
			name:  "one overdue one paid",
			total: 2,
			rows: []model.MonthlyPaymentStatus{
				statusRow(model.MonthlyStatusOverdue, 150000),
				statusRow(model.MonthlyStatusPaid, 0),
			},
			want: StudentPaymentSummary{
				TotalCourses:   2,
				PaidCourses:    1,
				OverdueCourses: 1,
				TotalOverdue:   150000,
				Status:         SummaryOverdue,
			},
		},
		{
			name:  "pending counts as partial",
			total: 2,
			rows: []model.MonthlyPaymentStatus{
				statusRow(model.MonthlyStatusPending, 500000),
				statusRow(model.MonthlyStatusPaid, 0),
			},
			want: StudentPaymentSummary{
				TotalCourses:   2,
				PaidCourses:    1,
				PartialCourses: 1,
				Status:         SummaryPartial,
			},
		},
		{
			name:  "overdue wins over everything",
			total: 4,
			rows: []model.MonthlyPaymentStatus{
				statusRow(model.MonthlyStatusPaid, 0),
				statusRow(model.MonthlyStatusPaid, 0),
				statusRow(model.MonthlyStatusPartial, 100000),
				statusRow(model.MonthlyStatusOverdue, 50000),
			},
			want: StudentPaymentSummary{
				TotalCourses:   4,
				PaidCourses:    2,
				PartialCourses: 1,
				OverdueCourses: 1,
				TotalOverdue:   50000,
				Status:         SummaryOverdue,
			},
		},
		{
			name:  "unbilled course keeps status partial",
			total: 2,
			rows:  []model.MonthlyPaymentStatus{statusRow(model.MonthlyStatusPaid, 0)},
			want: StudentPaymentSummary{
				TotalCourses: 2,
				PaidCourses:  1,
				Status:       SummaryPartial,
			},
		},
		{
			name:  "no rows at all for active courses",
			total: 3,
			want:  StudentPaymentSummary{TotalCourses: 3, Status: SummaryPartial},
		},
		{
			name:  "overdue remaining amounts sum exactly",
			total: 3,
			rows: []model.MonthlyPaymentStatus{
				statusRow(model.MonthlyStatusOverdue, 150000),
				statusRow(model.MonthlyStatusOverdue, 75000),
				statusRow(model.MonthlyStatusOverdue, 1),
			},
			want: StudentPaymentSummary{
				TotalCourses:   3,
				OverdueCourses: 3,
				TotalOverdue:   225001,
				Status:         SummaryOverdue,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.total, tt.rows)
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
			if sum := got.PaidCourses + got.PartialCourses + got.OverdueCourses; sum > got.TotalCourses {
				t.Errorf("bucket sum %d exceeds total %d", sum, got.TotalCourses)
			}
		})
	}
}

func TestClassifyOrderIndependent(t *testing.T) {
	rows := []model.MonthlyPaymentStatus{
		statusRow(model.MonthlyStatusPaid, 0),
		statusRow(model.MonthlyStatusOverdue, 90000),
		statusRow(model.MonthlyStatusPartial, 20000),
	}
	want := Classify(3, rows)

	reversed := []model.MonthlyPaymentStatus{rows[2], rows[1], rows[0]}
	if got := Classify(3, reversed); got != want {
		t.Errorf("row order changed the summary: %+v vs %+v", got, want)
	}
}

func statusRowFor(courseID uuid.UUID, status model.MonthlyStatus, remaining int64) model.MonthlyPaymentStatus {
	r := statusRow(status, remaining)
	r.StudentCourseID = courseID
	return r
}

// The batch path must produce, per student, exactly what the single-student
// path produces over the same courses and rows.
func TestBatchGroupingMatchesSingle(t *testing.T) {
	studentA := uuid.New()
	studentB := uuid.New()
	studentC := uuid.New() // no active courses

	courseA1 := courseModel.StudentCourse{ID: uuid.New(), StudentID: studentA}
	courseA2 := courseModel.StudentCourse{ID: uuid.New(), StudentID: studentA}
	courseB1 := courseModel.StudentCourse{ID: uuid.New(), StudentID: studentB}
	courses := []courseModel.StudentCourse{courseA1, courseA2, courseB1}

	rowA1 := statusRowFor(courseA1.ID, model.MonthlyStatusPaid, 0)
	rowA2 := statusRowFor(courseA2.ID, model.MonthlyStatusOverdue, 150000)
	rowB1 := statusRowFor(courseB1.ID, model.MonthlyStatusPending, 500000)
	stray := statusRowFor(uuid.New(), model.MonthlyStatusOverdue, 999999)
	rows := []model.MonthlyPaymentStatus{rowB1, rowA2, stray, rowA1}

	// studentA requested twice; the duplicate must collapse
	out, distinct := preseedSummaries([]uuid.UUID{studentA, studentB, studentC, studentA})
	if len(distinct) != 3 {
		t.Fatalf("distinct = %d ids, want 3", len(distinct))
	}
	for studentID, summary := range groupAndClassify(courses, rows) {
		out[studentID] = summary
	}

	want := map[uuid.UUID]StudentPaymentSummary{
		studentA: Classify(2, []model.MonthlyPaymentStatus{rowA1, rowA2}),
		studentB: Classify(1, []model.MonthlyPaymentStatus{rowB1}),
		studentC: EmptySummary(),
	}
	if len(out) != len(want) {
		t.Fatalf("got %d entries, want %d", len(out), len(want))
	}
	for studentID, w := range want {
		if got := out[studentID]; got != w {
			t.Errorf("student %s: got %+v, want %+v", studentID, got, w)
		}
	}

	// sanity on the worst case: the stray row must not leak into anyone's sum
	if got := out[studentA]; got.Status != SummaryOverdue || got.TotalOverdue != 150000 {
		t.Errorf("studentA = %+v, want overdue with 150000 outstanding", got)
	}
}

func TestGroupAndClassifyNoRows(t *testing.T) {
	student := uuid.New()
	courses := []courseModel.StudentCourse{{ID: uuid.New(), StudentID: student}}

	got := groupAndClassify(courses, nil)
	want := Classify(1, nil)
	if got[student] != want {
		t.Errorf("unbilled student = %+v, want %+v", got[student], want)
	}
}

func TestEmptySummary(t *testing.T) {
	s := EmptySummary()
	if s.Status != SummaryNoCourses {
		t.Errorf("status = %q, want %q", s.Status, SummaryNoCourses)
	}
	if s.TotalCourses != 0 || s.PaidCourses != 0 || s.PartialCourses != 0 || s.OverdueCourses != 0 || s.TotalOverdue != 0 {
		t.Errorf("counters not zero: %+v", s)
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2026, time.February, 15, 10, 0, 0, 0, time.UTC))
	if p.Month != 2 || p.Year != 2026 {
		t.Errorf("PeriodOf() = %+v, want {2 2026}", p)
	}
}
