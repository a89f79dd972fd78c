package payroll

import (
	"bytes"
	"fmt"
	"strings"

	"go-payroll/internal/employee"
	"go-payroll/internal/payperiod"

	"github.com/shopspring/decimal"
)

func payslipLines(emp employee.Employee, period payperiod.PayPeriod, rec PayrollRecord) []string {
	row := func(label string, amount decimal.Decimal) string {
		return fmt.Sprintf("%-24s %14s", label, amount.StringFixed(2))
	}
	return []string{
		"PAYSLIP",
		fmt.Sprintf("%s  %s", emp.EmployeeNumber, emp.FullName),
		fmt.Sprintf("Period %s to %s, paid %s",
			period.StartDate.Format(payperiod.DateLayout),
			period.EndDate.Format(payperiod.DateLayout),
			period.PayDate.Format(payperiod.DateLayout)),
		"",
		row("Basic salary", rec.BasicSalary),
		row("Attendance earnings", rec.AttendanceEarnings),
		row("Overtime pay", rec.OvertimePay),
		row("Benefits", rec.TotalBenefits),
		row("Gross income", rec.GrossIncome),
		"",
		row("Pension", rec.PensionContribution),
		row("Health", rec.HealthContribution),
		row("Housing", rec.HousingContribution),
		row("Withholding tax", rec.WithholdingTax),
		row("Total deductions", rec.TotalDeductions),
		"",
		row("Net salary", rec.NetSalary),
	}
}

// renderPayslip writes a single page PDF with one text line per entry.
func renderPayslip(emp employee.Employee, period payperiod.PayPeriod, rec PayrollRecord) []byte {
	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range payslipLines(emp, period, rec) {
		if i > 0 {
			content.WriteString("T* ")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes()
}

func pdfEscape(v string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(v)
}
