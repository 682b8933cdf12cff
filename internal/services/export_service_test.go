package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/sjperalta/mortgagekit-api/internal/calculator"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture(t *testing.T) (*ExportService, models.LoanInput, *models.MortgageSchedule) {
	t.Helper()
	in := loanInput(models.RepaymentTypeStandard)
	in.TermYears = 1

	schedule, err := calculator.Standard{}.Schedule(in)
	require.NoError(t, err)

	svc := NewExportService()
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return svc, in, schedule
}

func TestExportCSV(t *testing.T) {
	svc, in, schedule := exportFixture(t)

	file, err := svc.Export(context.Background(), "csv", in, schedule)
	require.NoError(t, err)
	assert.Equal(t, "mortgage_schedule_standardPrincipalAndInterest_2024-05-01.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13)
	assert.Equal(t, scheduleHeader, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2024-01-01", records[1][1])
	assert.Equal(t, schedule.Schedule[0].PaymentAmount.StringFixed(2), records[1][2])
}

func TestExportXLSX(t *testing.T) {
	svc, in, schedule := exportFixture(t)

	file, err := svc.Export(context.Background(), "XLSX", in, schedule)
	require.NoError(t, err)
	assert.Equal(t, "mortgage_schedule_standardPrincipalAndInterest_2024-05-01.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	assert.Len(t, rows, 13)
	assert.Equal(t, "Payment", rows[0][0])

	repaymentType, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Standard Principal and Interest", repaymentType)

	interval, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "30 days", interval)
}

func TestPaymentInterval(t *testing.T) {
	in := loanInput(models.RepaymentTypeAcceleratedBiweekly)
	in.TermYears = 1
	biweekly, err := calculator.AcceleratedBiweekly{}.Schedule(in)
	require.NoError(t, err)
	assert.Equal(t, "14 days", paymentInterval(biweekly))

	assert.Equal(t, "-", paymentInterval(&models.MortgageSchedule{}))
}

func TestExportPDF(t *testing.T) {
	svc, in, schedule := exportFixture(t)

	file, err := svc.Export(context.Background(), "pdf", in, schedule)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	svc, in, schedule := exportFixture(t)

	_, err := svc.Export(context.Background(), "docx", in, schedule)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
