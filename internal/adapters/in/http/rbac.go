package http

import (
	"net/http"
	"slices"
	"strings"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// The back-office sits behind the employee login proxy, which forwards the authenticated
// employee in these headers.
const (
	HeaderEmployeeID       = "X-Employee-Id"
	HeaderEmployeeRoles    = "X-Employee-Roles"
	HeaderEmployeeLanguage = "X-Employee-Language"

	employeeContextKey = "backoffice.employee"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type Capability string

const (
	CapRead   Capability = "read"
	CapCreate Capability = "create"
	CapUpdate Capability = "update"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin:  {CapRead, CapCreate, CapUpdate},
	RoleEditor: {CapRead, CapCreate, CapUpdate},
	RoleViewer: {CapRead},
}

// Employee is the caller of a request. ID is zero when the proxy did not send one.
type Employee struct {
	ID       kernel.UUID
	Roles    []Role
	Language string
}

func (e Employee) Can(capability Capability) bool {
	for _, role := range e.Roles {
		if slices.Contains(roleCapabilities[role], capability) {
			return true
		}
	}
	return false
}

func employeeFrom(c echo.Context) Employee {
	employee, _ := c.Get(employeeContextKey).(Employee)
	return employee
}

// identify reads the employee headers. Unknown roles and a malformed id are ignored.
func identify(defaultLanguage string, languages []kernel.Language) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header
			employee := Employee{Language: defaultLanguage}

			if id, err := kernel.UUIDFromString(header.Get(HeaderEmployeeID)); err == nil {
				employee.ID = id
			}
			for _, raw := range strings.Split(header.Get(HeaderEmployeeRoles), ",") {
				role := Role(strings.ToLower(strings.TrimSpace(raw)))
				if _, known := roleCapabilities[role]; known && !slices.Contains(employee.Roles, role) {
					employee.Roles = append(employee.Roles, role)
				}
			}
			if lang := strings.ToLower(strings.TrimSpace(header.Get(HeaderEmployeeLanguage))); lang != "" {
				if slices.ContainsFunc(languages, func(l kernel.Language) bool { return l.IsoCode() == lang }) {
					employee.Language = lang
				}
			}

			c.Set(employeeContextKey, employee)
			return next(c)
		}
	}
}

// require answers 403 when the employee lacks capability.
func require(capability Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !employeeFrom(c).Can(capability) {
				return echo.NewHTTPError(http.StatusForbidden, MsgNoAccess)
			}
			return next(c)
		}
	}
}

// requireOrRedirect sends a denied employee back to the listing with MsgNoEditAccess.
func (s *Server) requireOrRedirect(capability Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !employeeFrom(c).Can(capability) {
				return s.redirectToListing(c, FlashError, MsgNoEditAccess)
			}
			return next(c)
		}
	}
}
