package orderreturnstaterepo_test

import (
	"context"
	"testing"

	"backoffice/internal/adapters/out/postgres/orderreturnstaterepo"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderreturnstate"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderReturnStateRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderreturnstaterepo.GormOrderReturnStateRepository
}

func (suite *OrderReturnStateRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&orderreturnstaterepo.OrderReturnStateDTO{}, &orderreturnstaterepo.OrderReturnStateLangDTO{}))
}

func (suite *OrderReturnStateRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("order_return_states", "order_return_state_langs"))
	suite.repository = orderreturnstaterepo.NewGormOrderReturnStateRepository(suite.pg.DB)
}

func (suite *OrderReturnStateRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderReturnStateRepositoryIntegrationTestSuite) TestAddUpdateGet() {
	ctx := context.Background()
	state, err := orderreturnstate.NewOrderReturnState(
		kernel.NewUUID(),
		kernel.NewLocalizedString(map[string]string{"en": "Waiting for confirmation", "fr": "En attente de confirmation"}),
		"#4169E1",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, state))

	suite.Require().NoError(state.ChangeColor("#DC143C"))
	suite.Require().NoError(state.Rename(kernel.NewLocalizedString(map[string]string{"en": "Return denied"})))
	suite.Require().NoError(suite.repository.Update(ctx, state))

	got, err := suite.repository.Get(ctx, state.ID())
	suite.Require().NoError(err)
	suite.Equal("#DC143C", got.Color().String())
	suite.Equal("Return denied", got.Name("en"))
	suite.Empty(got.Name("fr"))
}

func (suite *OrderReturnStateRepositoryIntegrationTestSuite) TestMissing() {
	ctx := context.Background()
	state, err := orderreturnstate.NewOrderReturnState(
		kernel.NewUUID(),
		kernel.NewLocalizedString(map[string]string{"en": "Ghost"}),
		"#fff",
	)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, state.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorContains(err, "record not found")

	err = suite.repository.Update(ctx, state)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderReturnStateRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderReturnStateRepositoryIntegrationTestSuite))
}
