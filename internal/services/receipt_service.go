package services

import (
	"context"
	"strings"

	"clientdesk/internal/backend"
	"clientdesk/internal/forms"
	"clientdesk/internal/models"
	"clientdesk/internal/pdf"
	"clientdesk/internal/state"
)

// ReceiptService drives the receipt consult and registration flows. Receipts
// are read-only in this surface apart from registration.
type ReceiptService struct {
	API     *backend.Client
	List    *state.SharedList
	Voucher pdf.Generator
}

func NewReceiptService(api *backend.Client, list *state.SharedList, voucher pdf.Generator) *ReceiptService {
	return &ReceiptService{API: api, List: list, Voucher: voucher}
}

// Search replaces the shared receipt list with the filtered result and sets
// the no-results flag when it comes back empty.
func (s *ReceiptService) Search(ctx context.Context, f backend.ReceiptFilter) ([]models.Receipt, error) {
	receipts, err := s.API.SearchReceipts(ctx, f)
	if err != nil {
		return nil, err
	}
	s.List.ReplaceReceipts(receipts)
	s.List.SetNoResults(len(receipts) == 0)
	return receipts, nil
}

func (s *ReceiptService) Get(ctx context.Context, id int) (*models.Receipt, error) {
	return s.API.GetReceipt(ctx, id)
}

// Register validates and creates a receipt for an existing client.
func (s *ReceiptService) Register(ctx context.Context, form forms.ReceiptForm) RegisterResult {
	if errs := form.Validate(); len(errs) > 0 {
		return RegisterResult{FieldErrors: errs}
	}
	payload := models.ReceiptPayload{
		ClientID:    form.ClientIDValue(),
		Amount:      form.AmountValue(),
		PaymentType: strings.TrimSpace(form.PaymentType),
		PaymentDate: strings.TrimSpace(form.PaymentDate),
	}
	if _, err := s.API.RegisterReceipt(ctx, payload); err != nil {
		return RegisterResult{Message: MsgReceiptFailure}
	}
	return RegisterResult{Created: true, Message: MsgReceiptSuccess}
}

// VoucherPDF renders the downloadable payment voucher for a receipt.
func (s *ReceiptService) VoucherPDF(r models.Receipt) ([]byte, error) {
	return s.Voucher.Voucher(r)
}
