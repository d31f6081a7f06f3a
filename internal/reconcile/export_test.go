package reconcile

import (
	"bytes"
	"testing"
	"time"

	"till-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook_KeepsOrder(t *testing.T) {
	records := []models.DailyRecord{
		NewRecord(SubmitForm{TotalSales: 2, ClosingCash: 1}, time.Date(2026, 10, 2, 18, 30, 0, 0, time.UTC)),
		NewRecord(SubmitForm{TotalSales: 1}, time.Date(2026, 10, 1, 18, 30, 0, 0, time.UTC)),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exportSheet}, f.GetSheetList())
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2026-10-02 18:30", rows[1][0])
	assert.Equal(t, "2", rows[1][3])
	assert.Equal(t, "2026-10-01 18:30", rows[2][0])
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "daily-records-2026-10-19.xlsx", ExportFilename(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)))
}
