package forms

import (
	"regexp"
	"strings"
)

const PhoneMinLen = 9

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	MsgRequired     = "Campo obrigatório"
	MsgInvalidEmail = "Insira um e-mail válido"
	MsgShortPhone   = "Insira um celular válido"
)

// ClientForm carries the three editable client fields. Phone is the raw
// digit string; the display mask is applied only at render time.
type ClientForm struct {
	Name  string `form:"nome"`
	Email string `form:"email"`
	Phone string `form:"celular"`
}

// Validate checks the form against the client schema and returns one message
// per failing field. The same schema backs both inline error display and the
// pre-submit guard, so an empty map is the only green light.
func (f ClientForm) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		errs["nome"] = MsgRequired
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = MsgRequired
	case !emailRegexp.MatchString(email):
		errs["email"] = MsgInvalidEmail
	}

	phone := UnmaskPhone(f.Phone)
	switch {
	case phone == "":
		errs["celular"] = MsgRequired
	case len(phone) < PhoneMinLen:
		errs["celular"] = MsgShortPhone
	}

	return errs
}
