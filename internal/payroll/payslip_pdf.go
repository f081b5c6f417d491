package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

func renderPayslipPDF(p Payslip) ([]byte, error) {
	lines := []string{
		fmt.Sprintf("Payslip for %s", p.Month),
		"",
		fmt.Sprintf("Employee: %s (%s)", p.EmployeeName, p.EmployeeCode),
	}
	if p.Designation != "" {
		lines = append(lines, fmt.Sprintf("Designation: %s", p.Designation))
	}
	lines = append(lines,
		fmt.Sprintf("Working days: %d   Payable days: %s   LOP days: %s",
			p.WorkingDays, p.PayableDays.StringFixed(1), p.LOPDays.StringFixed(1)),
		"",
	)

	sections := []struct {
		kind  string
		title string
	}{
		{KindEarning, "Earnings"},
		{KindDeduction, "Deductions"},
		{KindReimbursement, "Reimbursements"},
		{KindEmployer, "Employer contributions"},
	}
	for _, sec := range sections {
		var rows []string
		for _, c := range p.Components {
			if c.Kind == sec.kind {
				rows = append(rows, fmt.Sprintf("  %-40s %14s", c.Name, formatRupees(c.Amount)))
			}
		}
		if len(rows) == 0 {
			continue
		}
		lines = append(lines, sec.title)
		lines = append(lines, rows...)
		lines = append(lines, "")
	}

	lines = append(lines,
		fmt.Sprintf("Gross earnings: %s", formatRupees(p.Gross)),
		fmt.Sprintf("Total deductions: %s", formatRupees(p.TotalDeductions)),
	)
	if p.CappedDeductions > 0 {
		lines = append(lines, fmt.Sprintf("Deductions not recovered: %s", formatRupees(p.CappedDeductions)))
	}
	if p.TotalReimbursements > 0 {
		lines = append(lines, fmt.Sprintf("Reimbursements: %s", formatRupees(p.TotalReimbursements)))
	}
	lines = append(lines, fmt.Sprintf("Net pay: %s", formatRupees(p.Net)))

	return buildSimplePDF(lines)
}

// formatRupees renders paise as rupees with two decimals.
func formatRupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%sRs %d.%02d", sign, paise/100, paise%100)
}

// buildSimplePDF writes a single page PDF with one text line per entry.
func buildSimplePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 10 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
