package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"backoffice/internal/core/application/forms"
	"backoffice/internal/core/application/grid"
	"backoffice/internal/core/domain/model/orderstate"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex                = "index"
	pageOrderStateForm       = "order_state_form"
	pageOrderReturnStateForm = "order_return_state_form"
)

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"fieldName": forms.FieldName,
		// listing is trusted: its query comes from url.Values.Encode.
		"listing": func(query string) template.URL { return template.URL(listingURL(query)) }, //nolint:gosec // encoded query
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{pageIndex, pageOrderStateForm, pageOrderReturnStateForm} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/grid.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

type page struct {
	Title    string
	Flashes  []Flash
	Employee Employee
}

func (s *Server) newPage(c echo.Context, title string) page {
	return page{Title: title, Flashes: s.Flasher.Pop(c), Employee: employeeFrom(c)}
}

type gridView struct {
	Grid      grid.Grid
	CreateURL string
	EditURL   func(id string) string
	ToggleURL func(id, action string) string
	CanCreate bool
	CanUpdate bool
}

func (v gridView) FilterFormID() string {
	return v.Grid.Definition.ID + "_filter"
}

type indexPage struct {
	page
	Grids []gridView
}

type flagOption struct {
	Name  string
	Label string
}

var flagLabels = map[orderstate.Flag]string{
	orderstate.Loggable:    "Consider the associated order as validated.",
	orderstate.Invoice:     "Allow a customer to download and view PDF versions of their invoices.",
	orderstate.Hidden:      "Hide this status in all customer orders.",
	orderstate.SendEmail:   "Send an email to the customer when their order status has changed.",
	orderstate.PdfInvoice:  "Attach invoice PDF to email.",
	orderstate.PdfDelivery: "Attach delivery slip PDF to email.",
	orderstate.Shipped:     "Set the order as shipped.",
	orderstate.Paid:        "Set the order as paid.",
	orderstate.Delivery:    "Show delivery PDF.",
}

type orderStateFormPage struct {
	page
	Form             *forms.OrderStateForm
	Action           string
	Flags            []flagOption
	MailTemplatesURL string
}

func (s *Server) orderStateFormPage(c echo.Context, title, action string, form *forms.OrderStateForm) orderStateFormPage {
	flags := make([]flagOption, 0, len(flagLabels))
	for _, flag := range orderstate.AllFlags() {
		flags = append(flags, flagOption{Name: flag.String(), Label: flagLabels[flag]})
	}
	return orderStateFormPage{
		page:             s.newPage(c, title),
		Form:             form,
		Action:           action,
		Flags:            flags,
		MailTemplatesURL: s.MailTemplatesURL,
	}
}

type orderReturnStateFormPage struct {
	page
	Form   *forms.OrderReturnStateForm
	Action string
}
