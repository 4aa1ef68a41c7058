package services

import (
	"context"
	"errors"
	"strings"

	"clientdesk/internal/backend"
	"clientdesk/internal/forms"
	"clientdesk/internal/models"
	"clientdesk/internal/state"
)

// EditOutcome is the closed set of ways an edit submission can end.
type EditOutcome int

const (
	EditSuccess EditOutcome = iota
	EditNoChanges
	EditInvalid
	EditFailed
)

// EditResult is what the edit page renders: an outcome, the overlay message
// and, for EditInvalid, the per-field errors.
type EditResult struct {
	Outcome     EditOutcome
	Message     string
	FieldErrors map[string]string
}

// DeleteResult is what the detail page renders after a delete action. The
// overlay's back action goes to the search page only when Deleted is true.
type DeleteResult struct {
	Deleted bool
	Message string
}

// RegisterResult mirrors EditResult for the registration flow.
type RegisterResult struct {
	Created     bool
	Message     string
	FieldErrors map[string]string
}

// ClientService drives the client page flows against the backend and keeps
// the shared list cache coherent with what the user last saw.
type ClientService struct {
	API  *backend.Client
	List *state.SharedList
}

func NewClientService(api *backend.Client, list *state.SharedList) *ClientService {
	return &ClientService{API: api, List: list}
}

// Search runs the filtered query and replaces the shared client list with the
// result. An empty result raises the no-results flag; the previous list is
// still replaced so the page never renders stale rows.
func (s *ClientService) Search(ctx context.Context, f backend.Filter) ([]models.Client, error) {
	clients, err := s.API.SearchClients(ctx, f)
	if err != nil {
		return nil, err
	}
	s.List.ReplaceClients(clients)
	s.List.SetNoResults(len(clients) == 0)
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id int) (*models.Client, error) {
	return s.API.GetClient(ctx, id)
}

// PrefillEdit fetches the current record and shapes it into form state: the
// phone is stripped to raw digits before insertion, the field's display mask
// is applied independently at render time.
func (s *ClientService) PrefillEdit(ctx context.Context, id int) (forms.ClientForm, error) {
	current, err := s.API.GetClient(ctx, id)
	if err != nil {
		return forms.ClientForm{}, err
	}
	return forms.ClientForm{
		Name:  current.Name,
		Email: current.Email,
		Phone: forms.UnmaskPhone(current.Phone),
	}, nil
}

// Delete removes the record on the backend and, only on success, evicts the
// matching id from the shared list. Any failure leaves the cache untouched.
func (s *ClientService) Delete(ctx context.Context, id int) DeleteResult {
	if err := s.API.DeleteClient(ctx, id); err != nil {
		return DeleteResult{Deleted: false, Message: MsgDeleteFailure}
	}
	s.List.RemoveClient(id)
	return DeleteResult{Deleted: true, Message: MsgDeleteSuccess}
}

// SubmitEdit runs the edit submission flow:
//
//  1. re-fetch the current record, so the diff runs against latest server
//     state rather than a possibly stale pre-fill;
//  2. diff name/email/phone field by field and short-circuit a no-op edit
//     without calling the update endpoint;
//  3. re-validate against the schema as a guard behind the form-level check;
//  4. PUT the full submitted payload and invalidate the shared client list
//     on success so consumers re-fetch instead of rendering stale entries.
func (s *ClientService) SubmitEdit(ctx context.Context, id int, form forms.ClientForm) EditResult {
	current, err := s.API.GetClient(ctx, id)
	if err != nil {
		return EditResult{Outcome: EditFailed, Message: editFailureMessage(err)}
	}

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	phone := forms.UnmaskPhone(form.Phone)

	if name == strings.TrimSpace(current.Name) &&
		email == strings.TrimSpace(current.Email) &&
		phone == forms.UnmaskPhone(current.Phone) {
		return EditResult{Outcome: EditNoChanges, Message: MsgEditNoChanges}
	}

	if errs := form.Validate(); len(errs) > 0 {
		return EditResult{Outcome: EditInvalid, FieldErrors: errs}
	}

	payload := models.ClientPayload{Name: name, Email: email, Phone: phone}
	if _, err := s.API.UpdateClient(ctx, id, payload); err != nil {
		return EditResult{Outcome: EditFailed, Message: editFailureMessage(err)}
	}

	s.List.InvalidateClients()
	return EditResult{Outcome: EditSuccess, Message: MsgEditSuccess}
}

// Register validates and creates a new client record.
func (s *ClientService) Register(ctx context.Context, form forms.ClientForm) RegisterResult {
	if errs := form.Validate(); len(errs) > 0 {
		return RegisterResult{FieldErrors: errs}
	}
	payload := models.ClientPayload{
		Name:  strings.TrimSpace(form.Name),
		Email: strings.TrimSpace(form.Email),
		Phone: forms.UnmaskPhone(form.Phone),
	}
	if _, err := s.API.RegisterClient(ctx, payload); err != nil {
		return RegisterResult{Message: registerFailureMessage(err)}
	}
	return RegisterResult{Created: true, Message: MsgRegisterSuccess}
}

// editFailureMessage maps a backend error kind to the overlay message. The
// switch is exhaustive over the API client's closed error set; anything else
// gets the generic unexpected-error message.
func editFailureMessage(err error) string {
	var apiErr *backend.APIError
	var connErr *backend.ConnectivityError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return "Erro ao editar cliente: " + apiErr.Detail
		}
		return MsgEditNoDetail
	case errors.As(err, &connErr):
		return MsgEditConnectivity
	default:
		return MsgEditUnexpected
	}
}

func registerFailureMessage(err error) string {
	var apiErr *backend.APIError
	var connErr *backend.ConnectivityError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return "Erro ao cadastrar cliente: " + apiErr.Detail
		}
		return MsgRegisterNoDetail
	case errors.As(err, &connErr):
		return MsgRegisterConnectivity
	default:
		return MsgRegisterUnexpected
	}
}
