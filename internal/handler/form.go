package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pgen/pgen-go/internal/charset"
	"github.com/pgen/pgen-go/internal/form"
	"github.com/pgen/pgen-go/internal/service"
)

//go:embed templates/form.html
var formTemplate string

const errLengthDigits = "length may only contain digits"

type classField struct {
	Name    string
	Label   string
	Checked bool
}

type formView struct {
	Classes      []classField
	AllowRepeats bool
	Length       string
	Result       string
	Message      string
}

// FormHandler serves the browser version of the generator form.
type FormHandler struct {
	service *service.GeneratorService
	tmpl    *template.Template
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.GeneratorService) *FormHandler {
	return &FormHandler{
		service: svc,
		tmpl:    template.Must(template.New("form").Parse(formTemplate)),
	}
}

// HandleShow handles GET / requests.
func (h *FormHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, form.New(), "")
}

// HandleSubmit handles POST / requests. The action field selects between
// generate, increment and decrement.
func (h *FormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10) // 64KB
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	f, message := formFromValues(r.PostForm)
	if message != "" {
		h.render(w, http.StatusOK, f, message)
		return
	}

	switch r.PostForm.Get("action") {
	case "increment":
		f.Increment()
	case "decrement":
		f.Decrement()
	default:
		if _, err := h.service.GenerateForm(r.Context(), f); err != nil {
			if !isValidationError(err) {
				slog.Error("generating password from form", "error", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			message = err.Error()
		}
	}

	h.render(w, http.StatusOK, f, message)
}

// formFromValues rebuilds the form state from a submission. Checked classes
// arrive as repeated "class" values. A length that is not digit-only is
// rejected and the last accepted length is kept.
func formFromValues(values url.Values) (*form.Form, string) {
	f := &form.Form{
		AllowRepeats: values.Get("allow_repeats") != "",
		Result:       values.Get("result"),
	}
	for _, name := range values["class"] {
		c, err := charset.ParseClass(name)
		if err != nil {
			return f, err.Error() + ": " + name
		}
		f.SetSelected(c, true)
	}
	if !f.SetLengthText(values.Get("last_length")) {
		f.LengthText = ""
	}
	if !f.SetLengthText(values.Get("length")) {
		return f, errLengthDigits
	}
	return f, ""
}

func (h *FormHandler) render(w http.ResponseWriter, status int, f *form.Form, message string) {
	view := formView{
		AllowRepeats: f.AllowRepeats,
		Length:       f.LengthText,
		Result:       f.Result,
		Message:      message,
	}
	for _, c := range charset.All {
		view.Classes = append(view.Classes, classField{
			Name:    c.String(),
			Label:   c.Label(),
			Checked: f.Selected(c),
		})
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, view); err != nil {
		slog.Error("rendering form", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
