// Package http serves the order statuses back-office pages: the listing with both grids,
// the create and edit forms, and the flag toggles.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"backoffice/internal/core/application/forms"
	"backoffice/internal/core/application/grid"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstate"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	GridFactory interface {
		Definition() grid.Definition
		GetGrid(ctx context.Context, filters grid.Filters, language string) (grid.Grid, error)
	}

	SavedGridFilterReader interface {
		Handle(ctx context.Context, query queries.GetSavedGridFilterQuery) (string, bool, error)
	}

	GridFilterSaver interface {
		Handle(ctx context.Context, cmd commands.SaveGridFilterCommand) error
	}

	OrderStateFormBuilder interface {
		GetForm() *forms.OrderStateForm
		GetFormFor(ctx context.Context, id kernel.UUID) (*forms.OrderStateForm, error)
	}

	OrderStateFormHandler interface {
		Handle(ctx context.Context, form *forms.OrderStateForm) (forms.Result, error)
		HandleFor(ctx context.Context, id kernel.UUID, form *forms.OrderStateForm) (forms.Result, error)
	}

	OrderReturnStateFormBuilder interface {
		GetForm() *forms.OrderReturnStateForm
		GetFormFor(ctx context.Context, id kernel.UUID) (*forms.OrderReturnStateForm, error)
	}

	OrderReturnStateFormHandler interface {
		Handle(ctx context.Context, form *forms.OrderReturnStateForm) (forms.Result, error)
		HandleFor(ctx context.Context, id kernel.UUID, form *forms.OrderReturnStateForm) (forms.Result, error)
	}

	FlagToggler interface {
		Toggle(ctx context.Context, id kernel.UUID, flag orderstate.Flag) (bool, error)
	}
)

// Dependencies are the collaborators of Server, all wired by the composition root.
type Dependencies struct {
	OrderStatesGrid       GridFactory
	OrderReturnStatesGrid GridFactory
	SavedGridFilters      SavedGridFilterReader
	GridFilterSaver       GridFilterSaver

	OrderStateForms             OrderStateFormBuilder
	OrderStateFormHandler       OrderStateFormHandler
	OrderReturnStateForms       OrderReturnStateFormBuilder
	OrderReturnStateFormHandler OrderReturnStateFormHandler
	Toggler                     FlagToggler

	Flasher          *Flasher
	Metrics          *Metrics
	Languages        forms.Languages
	MailTemplatesURL string
	Logger           *slog.Logger
}

// Server holds the page handlers. It keeps no state between requests.
type Server struct {
	Dependencies
}

func NewServer(deps Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Server{Dependencies: deps}
}

// Index handles GET /order-states.
func (s *Server) Index(c echo.Context) error {
	employee := employeeFrom(c)

	orderStates, err := s.loadGrid(c, s.OrderStatesGrid, employee)
	if err != nil {
		return err
	}
	orderReturnStates, err := s.loadGrid(c, s.OrderReturnStatesGrid, employee)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, pageIndex, indexPage{
		page: s.newPage(c, "Statuses"),
		Grids: []gridView{
			{
				Grid:      orderStates,
				CreateURL: routeOrderStateCreate,
				EditURL:   orderStateEditURL,
				ToggleURL: orderStateToggleURL,
				CanCreate: employee.Can(CapCreate),
				CanUpdate: employee.Can(CapUpdate),
			},
			{
				Grid:      orderReturnStates,
				CreateURL: routeOrderReturnStateCreate,
				EditURL:   orderReturnStateEditURL,
				CanCreate: employee.Can(CapCreate),
				CanUpdate: employee.Can(CapUpdate),
			},
		},
	})
}

// loadGrid resolves the filters of one grid: explicit query parameters first, which are
// then remembered for the employee, otherwise the employee's saved filters, otherwise the
// defaults.
func (s *Server) loadGrid(c echo.Context, factory GridFactory, employee Employee) (grid.Grid, error) {
	ctx := c.Request().Context()
	definition := factory.Definition()

	filters, explicit := definition.FiltersFromQuery(c.QueryParams())
	switch {
	case employee.ID.IsZero():
	case explicit:
		s.saveFilters(ctx, employee, filters)
	default:
		if saved, ok := s.savedFilters(ctx, employee, definition); ok {
			filters = saved
		}
	}

	return factory.GetGrid(ctx, filters, employee.Language)
}

func (s *Server) savedFilters(ctx context.Context, employee Employee, definition grid.Definition) (grid.Filters, bool) {
	query, err := queries.NewGetSavedGridFilterQuery(employee.ID, definition.ID)
	if err != nil {
		return grid.Filters{}, false
	}
	raw, found, err := s.SavedGridFilters.Handle(ctx, query)
	if err != nil {
		s.Logger.WarnContext(ctx, "read saved grid filters", "grid", definition.ID, "error", err)
		return grid.Filters{}, false
	}
	if !found {
		return grid.Filters{}, false
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return grid.Filters{}, false
	}
	filters, ok := definition.FiltersFromQuery(values)
	return filters, ok
}

// saveFilters only logs failures; the page renders either way.
func (s *Server) saveFilters(ctx context.Context, employee Employee, filters grid.Filters) {
	cmd, err := commands.NewSaveGridFilterCommand(employee.ID, filters.GridID, filters.Encode().Encode())
	if err == nil {
		err = s.GridFilterSaver.Handle(ctx, cmd)
	}
	if err != nil {
		s.Logger.WarnContext(ctx, "save grid filters", "grid", filters.GridID, "error", err)
	}
}

// SearchGrid handles POST /order-states/filter. The form is dispatched to the return
// states grid only when it names that grid.
func (s *Server) SearchGrid(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	definition := grid.ResolveSearchDefinition(form)
	current, _ := definition.FiltersFromQuery(form)
	filters := definition.FiltersFromSearch(form, current)

	return c.Redirect(http.StatusFound, listingURL(filters.Encode().Encode()))
}

// CreateOrderState handles GET and POST /order-states/new.
func (s *Server) CreateOrderState(c echo.Context) error {
	ctx := c.Request().Context()
	form := s.OrderStateForms.GetForm()

	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		form.Submit(values)

		result, err := s.OrderStateFormHandler.Handle(ctx, form)
		if err != nil {
			if flashErr := s.flashDomainError(c, err); flashErr != nil {
				return flashErr
			}
		} else if result.Success() {
			return s.redirectToListing(c, FlashSuccess, MsgCreated)
		}
	}

	return c.Render(http.StatusOK, pageOrderStateForm, s.orderStateFormPage(c, "Add new order status", routeOrderStateCreate, form))
}

// EditOrderState handles GET and POST /order-states/:orderStateId/edit.
func (s *Server) EditOrderState(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := bindID(c, paramOrderStateID)
	if !ok {
		return s.redirectToListing(c, FlashError, MsgOrderStateNotFound)
	}

	form, err := s.OrderStateForms.GetFormFor(ctx, id)
	if err != nil {
		return s.redirectOnDomainError(c, err)
	}

	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		form.Submit(values)

		result, err := s.OrderStateFormHandler.HandleFor(ctx, id, form)
		if err != nil {
			if flashErr := s.flashDomainError(c, err); flashErr != nil {
				return flashErr
			}
		} else if result.Success() {
			return s.redirectToListing(c, FlashSuccess, MsgUpdated)
		}
	}

	title := "Editing status " + form.Data.Names[s.Languages.Default.IsoCode()]
	return c.Render(http.StatusOK, pageOrderStateForm, s.orderStateFormPage(c, title, orderStateEditURL(id.String()), form))
}

// CreateOrderReturnState handles GET and POST /order-return-states/new.
func (s *Server) CreateOrderReturnState(c echo.Context) error {
	ctx := c.Request().Context()
	form := s.OrderReturnStateForms.GetForm()

	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		form.Submit(values)

		result, err := s.OrderReturnStateFormHandler.Handle(ctx, form)
		if err != nil {
			if flashErr := s.flashDomainError(c, err); flashErr != nil {
				return flashErr
			}
		} else if result.Success() {
			return s.redirectToListing(c, FlashSuccess, MsgCreated)
		}
	}

	return c.Render(http.StatusOK, pageOrderReturnStateForm, orderReturnStateFormPage{
		page:   s.newPage(c, "Add new merchandise return status"),
		Form:   form,
		Action: routeOrderReturnStateCreate,
	})
}

// EditOrderReturnState handles GET and POST /order-return-states/:orderReturnStateId/edit.
func (s *Server) EditOrderReturnState(c echo.Context) error {
	ctx := c.Request().Context()

	id, ok := bindID(c, paramOrderReturnStateID)
	if !ok {
		return s.redirectToListing(c, FlashError, MsgOrderReturnStateNotFound)
	}

	form, err := s.OrderReturnStateForms.GetFormFor(ctx, id)
	if err != nil {
		return s.redirectOnDomainError(c, err)
	}

	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		form.Submit(values)

		result, err := s.OrderReturnStateFormHandler.HandleFor(ctx, id, form)
		if err != nil {
			if flashErr := s.flashDomainError(c, err); flashErr != nil {
				return flashErr
			}
		} else if result.Success() {
			return s.redirectToListing(c, FlashSuccess, MsgUpdated)
		}
	}

	return c.Render(http.StatusOK, pageOrderReturnStateForm, orderReturnStateFormPage{
		page:   s.newPage(c, "Editing merchandise return status "+form.Data.Names[s.Languages.Default.IsoCode()]),
		Form:   form,
		Action: orderReturnStateEditURL(id.String()),
	})
}

// ToggleDelivery handles POST /order-states/:orderStateId/toggle-delivery.
func (s *Server) ToggleDelivery(c echo.Context) error {
	return s.toggle(c, orderstate.Delivery)
}

// ToggleInvoice handles POST /order-states/:orderStateId/toggle-invoice.
func (s *Server) ToggleInvoice(c echo.Context) error {
	return s.toggle(c, orderstate.Invoice)
}

// ToggleSendEmail handles POST /order-states/:orderStateId/toggle-send-email.
func (s *Server) ToggleSendEmail(c echo.Context) error {
	return s.toggle(c, orderstate.SendEmail)
}

func (s *Server) toggle(c echo.Context, flag orderstate.Flag) error {
	id, ok := bindID(c, paramOrderStateID)
	if !ok {
		s.Metrics.ObserveToggle(flag.String(), false, orderstate.ErrOrderStateNotFound)
		return s.redirectToListing(c, FlashError, MsgOrderStateNotFound)
	}

	value, err := s.Toggler.Toggle(c.Request().Context(), id, flag)
	s.Metrics.ObserveToggle(flag.String(), value, err)
	if err != nil {
		return s.redirectOnDomainError(c, err)
	}

	s.Logger.InfoContext(c.Request().Context(), "order state flag toggled",
		"orderStateId", id.String(), "flag", flag.String(), "value", value)
	return s.redirectToListing(c, FlashSuccess, MsgStatusToggled)
}

// flashDomainError flashes the message of a domain error and returns nil so the caller
// renders its form again. Any other error is returned untouched.
func (s *Server) flashDomainError(c echo.Context, err error) error {
	message, ok := TranslateError(err)
	if !ok {
		return err
	}
	return s.Flasher.Add(c, FlashError, message)
}

// redirectOnDomainError sends the employee back to the listing with the message of a
// domain error. Any other error is returned untouched.
func (s *Server) redirectOnDomainError(c echo.Context, err error) error {
	message, ok := TranslateError(err)
	if !ok {
		return err
	}
	return s.redirectToListing(c, FlashError, message)
}

func (s *Server) redirectToListing(c echo.Context, kind, message string) error {
	if err := s.Flasher.Add(c, kind, message); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, routeListing)
}

// bindID reads a UUID path parameter. ok is false for a malformed or nil id, which callers
// treat as a missing entity.
func bindID(c echo.Context, param string) (kernel.UUID, bool) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", param, c.Param(param), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// errorHandler logs what reaches echo unhandled before the default error page.
func (s *Server) errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			s.Logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
