package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

func renderPDF(report MonthlyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", report.EmployeeName, report.EmployeeNumber))
	pdf.Ln(7)
	if report.JobTitle != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Job title: %s", report.JobTitle))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", report.Month))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Present days: %d", report.PresentDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Requests: %d total, %d approved, %d pending, %d rejected",
		report.RequestsTotal, report.RequestsApproved, report.RequestsPending, report.RequestsRejected))
	pdf.Ln(10)

	writeCounter := func(label string, v *int) {
		if v == nil {
			return
		}
		pdf.Cell(0, 8, fmt.Sprintf("%s: %d", label, *v))
		pdf.Ln(7)
	}
	writeCounter("Work hours", report.WorkHours)
	writeCounter("Regular leave", report.RegularLeave)
	writeCounter("Casual leave", report.CasualLeave)
	writeCounter("Late minutes", report.LateMinutes)
	writeCounter("Monthly evaluation", report.MonthlyEvaluation)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
