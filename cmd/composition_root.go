package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/forms"
	"backoffice/internal/core/application/grid"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/application/usecases/toggles"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/jobs"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddOrderStateCommandHandler() commands.AddOrderStateCommandHandler {
	return commands.NewAddOrderStateCommandHandler(c.orderStateUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderStateCommandHandler() commands.EditOrderStateCommandHandler {
	return commands.NewEditOrderStateCommandHandler(c.orderStateUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderReturnStateCommandHandler() commands.AddOrderReturnStateCommandHandler {
	return commands.NewAddOrderReturnStateCommandHandler(c.orderReturnStateUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderReturnStateCommandHandler() commands.EditOrderReturnStateCommandHandler {
	return commands.NewEditOrderReturnStateCommandHandler(c.orderReturnStateUoWFactory())
}

func (c *CompositionRoot) CreateSaveGridFilterCommandHandler() commands.SaveGridFilterCommandHandler {
	return commands.NewSaveGridFilterCommandHandler(c.gridFilterUoWFactory())
}

func (c *CompositionRoot) CreatePurgeGridFiltersCommandHandler() commands.PurgeGridFiltersCommandHandler {
	return commands.NewPurgeGridFiltersCommandHandler(c.gridFilterUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderStateForEditingQueryHandler() queries.GetOrderStateForEditingQueryHandler {
	return queries.NewGetOrderStateForEditingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderReturnStateForEditingQueryHandler() queries.GetOrderReturnStateForEditingQueryHandler {
	return queries.NewGetOrderReturnStateForEditingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatesGridQueryHandler() queries.GetOrderStatesGridQueryHandler {
	return queries.NewGetOrderStatesGridQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderReturnStatesGridQueryHandler() queries.GetOrderReturnStatesGridQueryHandler {
	return queries.NewGetOrderReturnStatesGridQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSavedGridFilterQueryHandler() queries.GetSavedGridFilterQueryHandler {
	return queries.NewGetSavedGridFilterQueryHandler(c.gormDB)
}

// CreateLanguages resolves the configured languages. The default language must be one of them.
func (c *CompositionRoot) CreateLanguages() (forms.Languages, error) {
	all, err := kernel.ParseLanguages(c.config.Languages)
	if err != nil {
		return forms.Languages{}, fmt.Errorf("LANGUAGES: %w", err)
	}
	for _, language := range all {
		if language.IsoCode() == c.config.DefaultLanguage {
			return forms.Languages{All: all, Default: language}, nil
		}
	}
	return forms.Languages{}, fmt.Errorf("DEFAULT_LANGUAGE %q is not in LANGUAGES", c.config.DefaultLanguage)
}

// CreateFlasher uses random keys when none are configured, so flashes do not survive a restart.
func (c *CompositionRoot) CreateFlasher() (*httpin.Flasher, error) {
	hashKey := []byte(c.config.FlashHashKey)
	blockKey := []byte(c.config.FlashBlockKey)
	if len(hashKey) == 0 {
		c.logger.Warn("FLASH_HASH_KEY is not set, using a random key")
		hashKey = securecookie.GenerateRandomKey(32)
		blockKey = securecookie.GenerateRandomKey(32)
	}
	if hashKey == nil {
		return nil, errors.New("generate flash key")
	}
	return httpin.NewFlasher(hashKey, blockKey)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	languages, err := c.CreateLanguages()
	if err != nil {
		return nil, err
	}
	flasher, err := c.CreateFlasher()
	if err != nil {
		return nil, err
	}

	addOrderState := c.CreateAddOrderStateCommandHandler()
	editOrderState := c.CreateEditOrderStateCommandHandler()
	addOrderReturnState := c.CreateAddOrderReturnStateCommandHandler()
	editOrderReturnState := c.CreateEditOrderReturnStateCommandHandler()
	saveGridFilter := c.CreateSaveGridFilterCommandHandler()
	orderStateReader := c.CreateGetOrderStateForEditingQueryHandler()

	return httpin.NewServer(httpin.Dependencies{
		OrderStatesGrid:       grid.NewFactory(grid.OrderStatesDefinition(), c.CreateGetOrderStatesGridQueryHandler()),
		OrderReturnStatesGrid: grid.NewFactory(grid.OrderReturnStatesDefinition(), c.CreateGetOrderReturnStatesGridQueryHandler()),
		SavedGridFilters:      c.CreateGetSavedGridFilterQueryHandler(),
		GridFilterSaver:       &saveGridFilter,

		OrderStateForms:             forms.NewOrderStateFormBuilder(languages, orderStateReader),
		OrderStateFormHandler:       forms.NewOrderStateFormHandler(&addOrderState, &editOrderState),
		OrderReturnStateForms:       forms.NewOrderReturnStateFormBuilder(languages, c.CreateGetOrderReturnStateForEditingQueryHandler()),
		OrderReturnStateFormHandler: forms.NewOrderReturnStateFormHandler(&addOrderReturnState, &editOrderReturnState),
		Toggler:                     toggles.NewFlagToggler(orderStateReader, &editOrderState),

		Flasher:          flasher,
		Metrics:          httpin.NewMetrics(),
		Languages:        languages,
		MailTemplatesURL: c.config.MailTemplatesURL,
		Logger:           c.logger,
	}), nil
}

func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server, err := c.CreateHTTPServer()
	if err != nil {
		return nil, err
	}
	renderer, err := httpin.NewRenderer()
	if err != nil {
		return nil, err
	}
	return httpin.NewEcho(server, renderer), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := c.CreatePurgeGridFiltersCommandHandler()
	return jobs.NewJobManager(&purge, jobs.Config{
		GridFilterPurgeSchedule: c.config.GridFilterPurgeSchedule,
		GridFilterRetention:     c.config.GridFilterRetention,
	}, c.logger)
}

func (c *CompositionRoot) orderStateUoWFactory() commands.OrderStateUoWFactory {
	return FuncOrderStateUoWFactory(func() commands.OrderStateUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReturnStateUoWFactory() commands.OrderReturnStateUoWFactory {
	return FuncOrderReturnStateUoWFactory(func() commands.OrderReturnStateUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) gridFilterUoWFactory() commands.GridFilterUoWFactory {
	return FuncGridFilterUoWFactory(func() commands.GridFilterUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderStateUoWFactory func() commands.OrderStateUoW

func (f FuncOrderStateUoWFactory) Create() commands.OrderStateUoW {
	return f()
}

type FuncOrderReturnStateUoWFactory func() commands.OrderReturnStateUoW

func (f FuncOrderReturnStateUoWFactory) Create() commands.OrderReturnStateUoW {
	return f()
}

type FuncGridFilterUoWFactory func() commands.GridFilterUoW

func (f FuncGridFilterUoWFactory) Create() commands.GridFilterUoW {
	return f()
}
