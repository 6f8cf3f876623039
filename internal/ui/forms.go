package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"staffdeck/internal/forms"
	"staffdeck/internal/model"
	"staffdeck/internal/state"
)

// userFormState drives the add/edit dialog: one text input per field, a
// focus cursor, and the latest validation messages keyed by field id.
type userFormState struct {
	editing bool
	orig    model.User
	fields  []formField
	focus   int
	errs    map[string]string
	// submitErr is the backend's rejection of the last save attempt,
	// shown inside the dialog so the entered values survive a retry.
	submitErr string
}

func (f *userFormState) op() state.Op {
	if f.editing {
		return state.OpEdit
	}
	return state.OpAdd
}

type formField struct {
	id    string
	label string
	input textinput.Model
}

var formFieldDefs = []struct{ id, label, placeholder string }{
	{"firstName", "First name", ""},
	{"lastName", "Last name", ""},
	{"gender", "Gender", "male | female | other"},
	{"birthDate", "Birth date", "1987-03-21"},
	{"jobTitle", "Job title", ""},
	{"phone", "Phone", "+56 912 345-678"},
	{"email", "Email", "name@example.com"},
	{"address", "Address", ""},
	{"city", "City", ""},
	{"country", "Country", ""},
}

func newUserFormState(prefill forms.UserForm, editing bool, orig model.User) userFormState {
	f := userFormState{editing: editing, orig: orig, errs: map[string]string{}}
	values := map[string]string{
		"firstName": prefill.FirstName,
		"lastName":  prefill.LastName,
		"gender":    prefill.Gender,
		"birthDate": prefill.BirthDate,
		"jobTitle":  prefill.JobTitle,
		"phone":     prefill.Phone,
		"email":     prefill.Email,
		"address":   prefill.Address,
		"city":      prefill.City,
		"country":   prefill.Country,
	}
	for _, def := range formFieldDefs {
		in := textinput.New()
		in.Placeholder = def.placeholder
		in.CharLimit = 256
		in.Prompt = ""
		in.SetValue(values[def.id])
		f.fields = append(f.fields, formField{id: def.id, label: def.label, input: in})
	}
	f.fields[0].input.Focus()
	return f
}

func (f *userFormState) focusField(idx int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	idx = ((idx % n) + n) % n
	f.fields[f.focus].input.Blur()
	f.focus = idx
	f.fields[f.focus].input.Focus()
}

func (f *userFormState) next() { f.focusField(f.focus + 1) }
func (f *userFormState) prev() { f.focusField(f.focus - 1) }

// toForm collects the current input values for validation and submission.
func (f *userFormState) toForm() forms.UserForm {
	get := func(id string) string {
		for _, fld := range f.fields {
			if fld.id == id {
				return strings.TrimSpace(fld.input.Value())
			}
		}
		return ""
	}
	return forms.UserForm{
		ID:        f.orig.ID,
		FirstName: get("firstName"),
		LastName:  get("lastName"),
		Gender:    get("gender"),
		BirthDate: get("birthDate"),
		JobTitle:  get("jobTitle"),
		Phone:     get("phone"),
		Email:     get("email"),
		Address:   get("address"),
		City:      get("city"),
		Country:   get("country"),
	}
}

func (f *userFormState) render(st Styles, saving bool) string {
	var b strings.Builder
	labelW := 0
	for _, fld := range f.fields {
		if runeLen(fld.label) > labelW {
			labelW = runeLen(fld.label)
		}
	}
	for i, fld := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s %s", marker, padRight(fld.label+":", labelW+1), fld.input.View())
		if msg, ok := f.errs[fld.id]; ok {
			b.WriteString("  ")
			b.WriteString(st.ErrText.Render(msg))
		}
		b.WriteByte('\n')
	}
	if f.submitErr != "" {
		b.WriteByte('\n')
		b.WriteString(st.ErrText.Render("save failed: " + f.submitErr))
		b.WriteByte('\n')
	}
	if saving {
		b.WriteString("\nsaving...  [esc]=cancel")
	} else {
		b.WriteString("\n[tab/↑↓]=field  [enter]=save  [esc]=cancel")
	}
	return b.String()
}
