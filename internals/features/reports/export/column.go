package export

/* =========================================================
   Declarative column descriptors
========================================================= */

// Format selects the rendering rule for a column.
type Format string

const (
	FormatText       Format = "text"
	FormatNumber     Format = "number"
	FormatCurrency   Format = "currency"
	FormatPercentage Format = "percentage"
	FormatDate       Format = "date"
)

// Column maps a record key to a worksheet header and rendering rule.
type Column struct {
	Header string
	Key    string
	Width  float64 // excel column width, 0 = leave default
	Format Format  // empty = text
}

// Column sets for the known report kinds. Keys must match the records built in
// rows.go.
var (
	ResultColumns = []Column{
		{Header: "Student", Key: "student_name", Width: 28},
		{Header: "Test", Key: "test_title", Width: 32},
		{Header: "Subject", Key: "subject", Width: 18},
		{Header: "Score", Key: "score", Width: 10, Format: FormatNumber},
		{Header: "Percentage", Key: "percentage", Width: 12, Format: FormatPercentage},
		{Header: "Status", Key: "status", Width: 10},
		{Header: "Time Spent", Key: "time_spent", Width: 12},
		{Header: "Completed At", Key: "completed_at", Width: 14, Format: FormatDate},
	}

	PaymentColumns = []Column{
		{Header: "Student", Key: "student_name", Width: 28},
		{Header: "Subject", Key: "subject", Width: 18},
		{Header: "Amount", Key: "amount", Width: 16, Format: FormatCurrency},
		{Header: "For Month", Key: "month_year", Width: 12},
		{Header: "Paid On", Key: "payment_date", Width: 14, Format: FormatDate},
		{Header: "Method", Key: "payment_method", Width: 10},
		{Header: "Notes", Key: "notes", Width: 30},
	}

	StudentColumns = []Column{
		{Header: "Full Name", Key: "full_name", Width: 28},
		{Header: "Phone", Key: "phone", Width: 16},
		{Header: "Parent Phone", Key: "parent_phone", Width: 16},
		{Header: "Group", Key: "group_name", Width: 14},
		{Header: "Enrolled", Key: "enrolled_at", Width: 14, Format: FormatDate},
		{Header: "Active Courses", Key: "total_courses", Width: 14, Format: FormatNumber},
		{Header: "Overdue", Key: "total_overdue", Width: 16, Format: FormatCurrency},
		{Header: "Payment Status", Key: "payment_status", Width: 16},
	}
)
