package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "bilimcenter_backend/internals/features/academics/courses/model"
	model "bilimcenter_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Billing period
========================================================= */

// Period is the calendar month a summary is computed for. Callers pass it in
// explicitly (PeriodOf(time.Now()) at the HTTP layer) so the computation stays
// deterministic.
type Period struct {
	Month int // 1..12
	Year  int
}

func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

/* =========================================================
   Summary types
========================================================= */

type SummaryStatus string

const (
	SummaryAllPaid   SummaryStatus = "all_paid"
	SummaryPartial   SummaryStatus = "partial"
	SummaryOverdue   SummaryStatus = "overdue"
	SummaryNoCourses SummaryStatus = "no_courses"
)

// StudentPaymentSummary is a student's payment health for one period. Never
// persisted; recomputed from monthly_payment_status on every call.
type StudentPaymentSummary struct {
	TotalCourses   int           `json:"totalCourses"`
	PaidCourses    int           `json:"paidCourses"`
	PartialCourses int           `json:"partialCourses"`
	OverdueCourses int           `json:"overdueCourses"`
	TotalOverdue   int64         `json:"totalOverdue"`
	Status         SummaryStatus `json:"status"`
}

// FetchOutcome tells callers whether a zero summary means "no active courses"
// or "the datastore was unreachable". HTTP handlers surface both the same way,
// but the distinction is kept here so they do not have to.
type FetchOutcome string

const (
	OutcomeOK          FetchOutcome = "ok"
	OutcomeEmpty       FetchOutcome = "empty"
	OutcomeFetchFailed FetchOutcome = "fetch_failed"
)

func EmptySummary() StudentPaymentSummary {
	return StudentPaymentSummary{Status: SummaryNoCourses}
}

/* =========================================================
   Classification (pure)
========================================================= */

// Classify buckets one period's status rows for a student. totalCourses is the
// number of active courses; rows may cover fewer courses than that when the
// month has not been billed yet, which lands the overall status in the partial
// bucket rather than all_paid.
func Classify(totalCourses int, rows []model.MonthlyPaymentStatus) StudentPaymentSummary {
	if totalCourses == 0 {
		return EmptySummary()
	}

	s := StudentPaymentSummary{TotalCourses: totalCourses}
	for _, row := range rows {
		switch row.Status {
		case model.MonthlyStatusPaid:
			s.PaidCourses++
		case model.MonthlyStatusPartial, model.MonthlyStatusPending:
			s.PartialCourses++
		case model.MonthlyStatusOverdue:
			s.OverdueCourses++
			s.TotalOverdue += row.RemainingAmount
		}
	}

	// tie-break order: worst bucket wins
	switch {
	case s.OverdueCourses > 0:
		s.Status = SummaryOverdue
	case s.PartialCourses > 0:
		s.Status = SummaryPartial
	case s.PaidCourses == s.TotalCourses:
		s.Status = SummaryAllPaid
	default:
		s.Status = SummaryPartial
	}
	return s
}

/* =========================================================
   Service
========================================================= */

type SummaryService struct {
	DB *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{DB: db}
}

// StudentSummary computes one student's summary for the period. Read failures
// are logged and absorbed: the caller always gets a usable summary.
func (s *SummaryService) StudentSummary(ctx context.Context, studentID uuid.UUID, period Period) (StudentPaymentSummary, FetchOutcome) {
	var courseIDs []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&courseModel.StudentCourse{}).
		Where("student_id = ? AND status = ?", studentID, courseModel.CourseStatusActive).
		Pluck("id", &courseIDs).Error
	if err != nil {
		log.Printf("[payments] course fetch failed student=%s: %v", studentID, err)
		return EmptySummary(), OutcomeFetchFailed
	}
	if len(courseIDs) == 0 {
		return EmptySummary(), OutcomeEmpty
	}

	rows, outcome := s.statusRows(ctx, courseIDs, period)
	return Classify(len(courseIDs), rows), outcome
}

// BatchSummaries computes summaries for a set of students in two grouped
// queries. Input IDs are deduped; every distinct ID gets an entry, and each
// entry matches what StudentSummary would return for that student.
func (s *SummaryService) BatchSummaries(ctx context.Context, studentIDs []uuid.UUID, period Period) map[uuid.UUID]StudentPaymentSummary {
	out, distinct := preseedSummaries(studentIDs)
	if len(distinct) == 0 {
		return out
	}

	var courses []courseModel.StudentCourse
	err := s.DB.WithContext(ctx).
		Select("id", "student_id").
		Where("student_id IN ? AND status = ?", distinct, courseModel.CourseStatusActive).
		Find(&courses).Error
	if err != nil {
		log.Printf("[payments] batch course fetch failed (%d students): %v", len(distinct), err)
		return out
	}
	if len(courses) == 0 {
		return out
	}

	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}

	rows, _ := s.statusRows(ctx, courseIDs, period)
	for studentID, summary := range groupAndClassify(courses, rows) {
		out[studentID] = summary
	}
	return out
}

// preseedSummaries dedupes the requested IDs and gives every distinct one an
// empty summary up front, so students with no active courses (or a failed
// fetch) still come back as no_courses.
func preseedSummaries(studentIDs []uuid.UUID) (map[uuid.UUID]StudentPaymentSummary, []uuid.UUID) {
	out := make(map[uuid.UUID]StudentPaymentSummary, len(studentIDs))
	distinct := make([]uuid.UUID, 0, len(studentIDs))
	for _, id := range studentIDs {
		if _, seen := out[id]; !seen {
			out[id] = EmptySummary()
			distinct = append(distinct, id)
		}
	}
	return out, distinct
}

// groupAndClassify buckets fetched courses and status rows by owning student
// and classifies each one through the same path the single-student call uses.
// Rows for course IDs outside the course set are ignored.
func groupAndClassify(courses []courseModel.StudentCourse, rows []model.MonthlyPaymentStatus) map[uuid.UUID]StudentPaymentSummary {
	courseOwner := make(map[uuid.UUID]uuid.UUID, len(courses))
	courseCount := make(map[uuid.UUID]int)
	for _, c := range courses {
		courseOwner[c.ID] = c.StudentID
		courseCount[c.StudentID]++
	}

	rowsByStudent := make(map[uuid.UUID][]model.MonthlyPaymentStatus, len(courseCount))
	for _, row := range rows {
		if owner, ok := courseOwner[row.StudentCourseID]; ok {
			rowsByStudent[owner] = append(rowsByStudent[owner], row)
		}
	}

	out := make(map[uuid.UUID]StudentPaymentSummary, len(courseCount))
	for studentID, total := range courseCount {
		out[studentID] = Classify(total, rowsByStudent[studentID])
	}
	return out
}

func (s *SummaryService) statusRows(ctx context.Context, courseIDs []uuid.UUID, period Period) ([]model.MonthlyPaymentStatus, FetchOutcome) {
	var rows []model.MonthlyPaymentStatus
	err := s.DB.WithContext(ctx).
		Where("student_course_id IN ? AND month = ? AND year = ?", courseIDs, period.Month, period.Year).
		Find(&rows).Error
	if err != nil {
		// degrade to "not billed yet" rather than failing the summary
		log.Printf("[payments] status fetch failed (%d courses, %02d/%d): %v", len(courseIDs), period.Month, period.Year, err)
		return nil, OutcomeFetchFailed
	}
	return rows, OutcomeOK
}
