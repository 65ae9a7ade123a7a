package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/sgfin/internal/domain"
)

// PDFFormatter renders an A4 client report: header with report id, preparer
// and client cards, one section per calculation and a disclaimer footer.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfFont    = "Helvetica"
	pdfMargin  = 15.0
	pdfWidth   = 210.0 - 2*pdfMargin
	pdfLabelW  = 110.0
	pdfLineH   = 6.0
	pdfCardGap = 4.0
)

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, 20)
	doc.AliasNbPages("")
	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(pdfFont, "", 7)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 5, fmt.Sprintf("%s - page %d/{nb}", report.ID, doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	r.header(report)
	for i, e := range report.Entries {
		r.entry(i+1, e)
	}
	if s, ok := stampDutyTotal(report); ok {
		r.stampDuty(s)
	}
	r.disclaimer(report.Preparer)

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) header(report *domain.Report) {
	pdf := r.pdf
	pdf.SetFont(pdfFont, "B", 16)
	pdf.SetTextColor(45, 45, 45)
	pdf.CellFormat(0, 9, "Singapore Financial Calculation Report", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, fmt.Sprintf("Report ID: %s    Generated: %s", report.ID, report.GeneratedAt.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	var cards [][]string
	if p := report.Preparer; !p.IsZero() {
		card := []string{"PREPARED BY", p.Name}
		if p.CEANumber != "" {
			card = append(card, "CEA: "+p.CEANumber)
		}
		if p.Mobile != "" {
			card = append(card, p.Mobile)
		}
		if p.Email != "" {
			card = append(card, p.Email)
		}
		cards = append(cards, card)
	}
	if c := report.Client; c.Name != "" {
		card := []string{"PREPARED FOR", c.Name}
		if c.Email != "" {
			card = append(card, c.Email)
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return
	}

	w := (pdfWidth - pdfCardGap*float64(len(cards)-1)) / float64(len(cards))
	top := pdf.GetY()
	bottom := top
	for i, card := range cards {
		x := pdfMargin + float64(i)*(w+pdfCardGap)
		pdf.SetXY(x+3, top+3)
		pdf.SetFont(pdfFont, "B", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(w-6, 4, card[0], "", 2, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 9)
		pdf.SetTextColor(45, 45, 45)
		for _, line := range card[1:] {
			pdf.CellFormat(w-6, 5, r.tr(line), "", 2, "L", false, 0, "")
		}
		if y := pdf.GetY() + 3; y > bottom {
			bottom = y
		}
	}
	pdf.SetDrawColor(200, 200, 200)
	for i := range cards {
		x := pdfMargin + float64(i)*(w+pdfCardGap)
		pdf.Rect(x, top, w, bottom-top, "D")
	}
	pdf.SetXY(pdfMargin, bottom+4)
}

func (r *pdfReport) entry(n int, e domain.ReportEntry) {
	pdf := r.pdf
	pdf.Ln(2)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.SetTextColor(45, 45, 45)
	pdf.CellFormat(0, 8, r.tr(fmt.Sprintf("%d. %s", n, entryTitle(e))), "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	if inputs := domain.InputFields(e.Input); len(inputs) > 0 {
		r.subheading("Inputs")
		r.fields(inputs)
	}
	r.subheading("Results")
	r.fields(e.Result.Fields())

	if ls := lines(e.Result); len(ls) > 0 {
		r.subheading("Breakdown")
		r.bracketTable(ls)
	}
}

func (r *pdfReport) subheading(s string) {
	r.pdf.SetFont(pdfFont, "B", 9)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(0, pdfLineH, s, "", 1, "L", false, 0, "")
}

func (r *pdfReport) fields(fields []domain.Field) {
	pdf := r.pdf
	pdf.SetTextColor(45, 45, 45)
	for _, f := range fields {
		pdf.SetFont(pdfFont, "", 9)
		if f.Kind == domain.KindText && len(f.Text) > 40 {
			pdf.MultiCell(0, 5, r.tr(f.Label+": "+f.Text), "", "L", false)
			continue
		}
		pdf.CellFormat(pdfLabelW, pdfLineH, r.tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "B", 9)
		pdf.CellFormat(pdfWidth-pdfLabelW, pdfLineH, r.tr(FormatField(f)), "", 1, "R", false, 0, "")
	}
}

func (r *pdfReport) bracketTable(ls []domain.BracketLine) {
	pdf := r.pdf
	widths := []float64{50, 50, 30, pdfWidth - 130}
	pdf.SetFont(pdfFont, "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range []string{"From", "To", "Rate", "Tax"} {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 5, h, "", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", 8)
	for _, l := range ls {
		pdf.CellFormat(widths[0], 5, FormatCurrency(l.From), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 5, FormatCurrency(l.To), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 5, FormatPercentage(l.Rate), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5, FormatCurrencyCents(l.Tax), "", 1, "R", false, 0, "")
	}
}

func (r *pdfReport) stampDuty(s domain.StampDutySummary) {
	pdf := r.pdf
	pdf.Ln(2)
	pdf.SetFont(pdfFont, "B", 12)
	pdf.SetTextColor(45, 45, 45)
	pdf.CellFormat(0, 8, "Total Stamp Duty", "B", 1, "L", false, 0, "")
	pdf.Ln(1)
	r.fields([]domain.Field{
		{Label: "Buyer's Stamp Duty", Kind: domain.KindCurrency, Value: s.BSD},
		{Label: "Additional Buyer's Stamp Duty", Kind: domain.KindCurrency, Value: s.ABSD},
		{Label: "Seller's Stamp Duty", Kind: domain.KindCurrency, Value: s.SSD},
		{Label: "Total", Kind: domain.KindCurrency, Value: s.Total},
	})
}

func (r *pdfReport) disclaimer(p domain.Preparer) {
	pdf := r.pdf
	pdf.Ln(6)
	pdf.SetFont(pdfFont, "B", 8)
	pdf.SetTextColor(45, 45, 45)
	pdf.CellFormat(0, 5, DisclaimerTitle, "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 7)
	pdf.SetTextColor(100, 100, 100)
	for _, line := range Disclaimer(p) {
		pdf.MultiCell(0, 3.5, r.tr("- "+line), "", "L", false)
		pdf.Ln(1)
	}
}
