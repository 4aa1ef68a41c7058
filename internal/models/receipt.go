package models

// Receipt is a payment record linked to a client. Read-only in this surface
// except for registration.
type Receipt struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"valor"`
	PaymentType string  `json:"tipoPagamento"`
	PaymentDate string  `json:"dataPagamento"`
	Client      Client  `json:"cliente"`
}

// ReceiptPayload is the body sent on POST /recibos.
type ReceiptPayload struct {
	ClientID    int     `json:"clienteId"`
	Amount      float64 `json:"valor"`
	PaymentType string  `json:"tipoPagamento"`
	PaymentDate string  `json:"dataPagamento"`
}
