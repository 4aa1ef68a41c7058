package models

// Client is a customer record as the backend serves it. Field names on the
// wire are Portuguese; dates arrive as strings and are formatted for display
// only at render time.
type Client struct {
	ID               int    `json:"id"`
	Name             string `json:"nome"`
	Email            string `json:"email"`
	Phone            string `json:"celular"`
	RegistrationDate string `json:"dataCadastro"`
	UpdateDate       string `json:"dataAtualizacao,omitempty"`
}

// ClientPayload is the body sent on PUT/POST /clientes.
type ClientPayload struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"celular"`
}
