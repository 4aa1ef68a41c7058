package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"clientdesk/internal/forms"
	"clientdesk/internal/models"
	"clientdesk/internal/utils"
)

// Generator renders receipt vouchers. Interface kept small so handlers can
// mock it in tests.
type Generator interface {
	Voucher(r models.Receipt) ([]byte, error)
}

// VoucherGenerator produces an A4 payment voucher for a receipt.
type VoucherGenerator struct {
	issuer string
}

func NewVoucherGenerator(issuer string) *VoucherGenerator {
	if issuer == "" {
		issuer = "clientdesk"
	}
	return &VoucherGenerator{issuer: issuer}
}

func (g *VoucherGenerator) Voucher(r models.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Recibo nº %d", r.ID), true)
	pdf.SetAuthor(g.issuer, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented Portuguese renders.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("RECIBO DE PAGAMENTO"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("nº %06d — %s", r.ID, utils.FormatDate(r.PaymentDate))
	pdf.CellFormat(0, 7, tr(sub), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, tr, "Cliente")
	g.kvLine(pdf, tr, "Nome", r.Client.Name)
	g.kvLine(pdf, tr, "E-mail", r.Client.Email)
	g.kvLine(pdf, tr, "Celular", forms.MaskPhone(r.Client.Phone))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, tr, "Pagamento")
	g.kvLine(pdf, tr, "Valor", fmt.Sprintf("R$ %.2f", r.Amount))
	g.kvLine(pdf, tr, "Forma de pagamento", r.PaymentType)
	g.kvLine(pdf, tr, "Data do pagamento", utils.FormatDate(r.PaymentDate))
	pdf.Ln(2)
	g.hr(pdf)

	pdf.SetFont("Helvetica", "", 11)
	note := fmt.Sprintf(
		"Recebemos de %s a importância acima referida, relativa ao pagamento registrado sob o número %d.",
		r.Client.Name, r.ID,
	)
	pdf.MultiCell(0, 6, tr(note), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render voucher: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *VoucherGenerator) sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, s string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr(s), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *VoucherGenerator) kvLine(pdf *gofpdf.Fpdf, tr func(string) string, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 6, tr(key+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(val), "", 1, "L", false, 0, "")
}

func (g *VoucherGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
