package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbookEmptyRows(t *testing.T) {
	f, err := BuildWorkbook("Payments", PaymentColumns, nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, f)

	f, err = BuildWorkbook("Payments", PaymentColumns, []Record{})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, f)
}

func TestBuildWorkbookCells(t *testing.T) {
	rows := []PaymentRow{
		{
			StudentName:   "Aziza Karimova",
			Subject:       "Math",
			Amount:        500000,
			PaymentMonth:  2,
			PaymentYear:   2026,
			PaymentDate:   time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC),
			PaymentMethod: "cash",
		},
	}
	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.ToRecord())
	}

	f, err := BuildWorkbook("Payments", PaymentColumns, records)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Payments", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Student", header)

	name, err := f.GetCellValue("Payments", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Aziza Karimova", name)

	amount, err := f.GetCellValue("Payments", "C2")
	require.NoError(t, err)
	assert.Equal(t, "500\u00a0000 UZS", amount)

	month, err := f.GetCellValue("Payments", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Feb 2026", month)

	date, err := f.GetCellValue("Payments", "E2")
	require.NoError(t, err)
	assert.Equal(t, "15.02.2026", date)
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, time.August, 29, 18, 45, 0, 0, time.UTC)
	if got := Filename("payments", at); got != "payments_2026-08-29.xlsx" {
		t.Errorf("Filename() = %q", got)
	}
}
