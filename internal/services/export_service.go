package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportFile is a rendered schedule ready to be sent as an attachment
type ExportFile struct {
	Content     []byte
	Filename    string
	ContentType string
}

var scheduleHeader = []string{"Payment", "Date", "Amount", "Principal", "Interest", "Remaining", "Rate"}

type ExportService struct {
	now func() time.Time
}

func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

// Export renders the schedule in the requested format
func (s *ExportService) Export(ctx context.Context, format string, in models.LoanInput, schedule *models.MortgageSchedule) (*ExportFile, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return s.ExportCSV(ctx, in, schedule)
	case FormatXLSX:
		return s.ExportXLSX(ctx, in, schedule)
	case FormatPDF:
		return s.ExportPDF(ctx, in, schedule)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func (s *ExportService) filename(in models.LoanInput, ext string) string {
	return fmt.Sprintf("mortgage_schedule_%s_%s.%s", in.RepaymentType, s.now().Format("2006-01-02"), ext)
}

// paymentInterval describes the spacing of the first two due dates
func paymentInterval(schedule *models.MortgageSchedule) string {
	if len(schedule.Schedule) < 2 {
		return "-"
	}
	days := decimalutil.DaysBetweenPayments(schedule.Schedule[0].PaymentDate.Time, schedule.Schedule[1].PaymentDate.Time)
	return fmt.Sprintf("%d days", days)
}

func scheduleRow(e models.PaymentScheduleEntry) []string {
	rate := ""
	if e.CurrentRate != nil {
		rate = e.CurrentRate.String()
	}
	return []string{
		strconv.Itoa(e.PaymentNumber),
		e.PaymentDate.String(),
		e.PaymentAmount.StringFixed(2),
		e.PrincipalComponent.StringFixed(2),
		e.InterestComponent.StringFixed(2),
		e.RemainingPrincipal.StringFixed(2),
		rate,
	}
}

func (s *ExportService) ExportCSV(ctx context.Context, in models.LoanInput, schedule *models.MortgageSchedule) (*ExportFile, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write(scheduleHeader)
	for _, e := range schedule.Schedule {
		if err := writer.Write(scheduleRow(e)); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", e.PaymentNumber, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &ExportFile{
		Content:     buf.Bytes(),
		Filename:    s.filename(in, FormatCSV),
		ContentType: "text/csv",
	}, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, in models.LoanInput, schedule *models.MortgageSchedule) (*ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Schedule"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	header := make([]interface{}, len(scheduleHeader))
	for i, h := range scheduleHeader {
		header[i] = h
	}
	_ = f.SetSheetRow(sheet, "A1", &header)
	_ = f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	for i, e := range schedule.Schedule {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.PaymentNumber,
			e.PaymentDate.String(),
			e.PaymentAmount.InexactFloat64(),
			e.PrincipalComponent.InexactFloat64(),
			e.InterestComponent.InexactFloat64(),
			e.RemainingPrincipal.InexactFloat64(),
		}
		if e.CurrentRate != nil {
			row = append(row, e.CurrentRate.InexactFloat64())
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", e.PaymentNumber, err)
		}
	}
	if n := len(schedule.Schedule); n > 0 {
		_ = f.SetCellStyle(sheet, "C2", fmt.Sprintf("F%d", n+1), moneyStyle)
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(summary, "A1", "Repayment Type")
	_ = f.SetCellValue(summary, "B1", in.RepaymentType.String())
	_ = f.SetCellValue(summary, "A2", "Principal")
	_ = f.SetCellValue(summary, "B2", in.Principal.StringFixed(2))
	_ = f.SetCellValue(summary, "A3", "Monthly Payment")
	_ = f.SetCellValue(summary, "B3", schedule.MonthlyPayment.StringFixed(2))
	_ = f.SetCellValue(summary, "A4", "Total Payments")
	_ = f.SetCellValue(summary, "B4", schedule.TotalPayments.StringFixed(2))
	_ = f.SetCellValue(summary, "A5", "Total Interest")
	_ = f.SetCellValue(summary, "B5", schedule.TotalInterest.StringFixed(2))
	_ = f.SetCellValue(summary, "A6", "Payment Interval")
	_ = f.SetCellValue(summary, "B6", paymentInterval(schedule))
	_ = f.SetCellStyle(summary, "A1", "A6", headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Content:     buf.Bytes(),
		Filename:    s.filename(in, FormatXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, in models.LoanInput, schedule *models.MortgageSchedule) (*ExportFile, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Mortgage Schedule")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	summaryLines := [][2]string{
		{"Repayment Type:", in.RepaymentType.String()},
		{"Principal:", in.Principal.StringFixed(2)},
		{"Annual Rate:", in.AnnualInterestRate.String() + "%"},
		{"Term:", fmt.Sprintf("%d years", in.TermYears)},
		{"Payment Interval:", paymentInterval(schedule)},
		{"Monthly Payment:", schedule.MonthlyPayment.StringFixed(2)},
		{"Total Payments:", schedule.TotalPayments.StringFixed(2)},
		{"Total Interest:", schedule.TotalInterest.StringFixed(2)},
	}
	for _, line := range summaryLines {
		pdf.Cell(40, 6, line[0])
		pdf.Cell(60, 6, line[1])
		pdf.Ln(6)
	}
	pdf.Ln(6)

	widths := []float64{18, 26, 30, 30, 30, 34, 16}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range scheduleHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, e := range schedule.Schedule {
		for i, v := range scheduleRow(e) {
			align := "R"
			if i == 1 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &ExportFile{
		Content:     buf.Bytes(),
		Filename:    s.filename(in, FormatPDF),
		ContentType: "application/pdf",
	}, nil
}
