package forms

import (
	"strconv"
	"strings"
)

const MsgInvalidAmount = "Insira um valor válido"

// ReceiptForm carries the receipt registration fields as submitted.
type ReceiptForm struct {
	ClientID    string `form:"clienteId"`
	Amount      string `form:"valor"`
	PaymentType string `form:"tipoPagamento"`
	PaymentDate string `form:"dataPagamento"`
}

func (f ReceiptForm) Validate() map[string]string {
	errs := map[string]string{}

	if id, err := strconv.Atoi(strings.TrimSpace(f.ClientID)); err != nil || id <= 0 {
		errs["clienteId"] = MsgRequired
	}

	// Amounts come in with a comma decimal separator.
	amount := strings.ReplaceAll(strings.TrimSpace(f.Amount), ",", ".")
	if v, err := strconv.ParseFloat(amount, 64); err != nil || v <= 0 {
		errs["valor"] = MsgInvalidAmount
	}

	if strings.TrimSpace(f.PaymentType) == "" {
		errs["tipoPagamento"] = MsgRequired
	}
	if strings.TrimSpace(f.PaymentDate) == "" {
		errs["dataPagamento"] = MsgRequired
	}

	return errs
}

// AmountValue returns the parsed amount; call only after Validate passes.
func (f ReceiptForm) AmountValue() float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(f.Amount), ",", "."), 64)
	return v
}

// ClientIDValue returns the parsed client id; call only after Validate passes.
func (f ReceiptForm) ClientIDValue() int {
	v, _ := strconv.Atoi(strings.TrimSpace(f.ClientID))
	return v
}
