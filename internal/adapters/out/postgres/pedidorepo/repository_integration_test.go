package pedidorepo_test

import (
	"context"
	"testing"
	"time"

	"farmadelivery/internal/adapters/out/postgres/pedidorepo"
	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/core/domain/model/pedido"
	"farmadelivery/internal/core/domain/model/pedido/pedidotest"
	"farmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

type PedidoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pedidorepo.GormPedidoRepository
	tracker    *MockAggregateTracker
}

func (suite *PedidoRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pedidorepo.PedidoDTO{}, &pedidorepo.LineaDTO{}))
}

func (suite *PedidoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pedidos, pedido_lineas").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = pedidorepo.NewGormPedidoRepository(suite.db, suite.tracker)
}

func (suite *PedidoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestAdd_ValidPedido_Success() {
	ctx := context.Background()
	p := pedidotest.New(1)
	suite.tracker.On("TrackAggregate", p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.assertPedidoCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestGet_ExistingPedido_RestoresAllFields() {
	ctx := context.Background()
	original := pedidotest.New(7,
		pedidotest.WithStatus(pedido.EnCamino),
		pedidotest.WithCourier(42),
		pedidotest.WithRejectedBy(3, 5),
		pedidotest.WithGanancia("380.00"),
		pedidotest.WithReceta("https://cdn.example.com/recetas/7.pdf"),
		pedidotest.WithFarmaciaUbicacion(-34.6037, -58.3816),
	)
	suite.tracker.On("TrackAggregate", original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	restored, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(restored.ID()))
	suite.Equal("PED-00007", restored.Numero())
	suite.Equal(pedido.EnCamino, restored.Status())
	suite.Require().NotNil(restored.Courier())
	suite.Equal(int64(42), restored.Courier().Int64())
	suite.Len(restored.RechazadoPor(), 2)
	suite.Equal("380.00", restored.Ganancia().String())
	suite.Equal("270.00", restored.Total().String())
	suite.Equal("https://cdn.example.com/recetas/7.pdf", restored.RecetaURL())
	suite.Require().NotNil(restored.Farmacia().Ubicacion)
	suite.InDelta(-34.6037, restored.Farmacia().Ubicacion.Lat(), 1e-9)

	lineas := restored.Lineas()
	suite.Require().Len(lineas, 2)
	suite.Equal("Ibuprofeno 400mg", lineas[0].Nombre)
	suite.Equal(2, lineas[0].Cantidad)
	suite.Equal("85.00", lineas[0].PrecioUnitario.String())
	suite.Empty(restored.DomainEvents())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestGet_NonExistentPedido_ReturnsNotFoundError() {
	p, err := suite.repository.Get(context.Background(), kernel.MustNewID(999))

	suite.Nil(p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()
	p := pedidotest.New(2)
	suite.tracker.On("TrackAggregate", p).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.ConfirmRecipe(pedidotest.CreatedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(pedido.Preparando, restored.Status())
	suite.Equal(1, restored.Version())
	suite.True(restored.UpdatedAt().Equal(pedidotest.CreatedAt.Add(time.Minute)))
	suite.Len(restored.Lineas(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()
	p := pedidotest.New(3)
	suite.tracker.On("TrackAggregate", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	first, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmRecipe(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.CancelRecipe(time.Now()))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(pedido.Preparando, restored.Status())
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestUpdate_NonExistentPedido_ReturnsNotFoundError() {
	p := pedidotest.New(404)

	err := suite.repository.Update(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *PedidoRepositoryIntegrationTestSuite) TestGetActiveForCourier_OnlyEnCaminoOfThatCourier() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything)

	fixtures := []*pedido.Pedido{
		pedidotest.New(10, pedidotest.WithStatus(pedido.EnCamino), pedidotest.WithCourier(42)),
		pedidotest.New(11, pedidotest.WithStatus(pedido.Entregado), pedidotest.WithCourier(42)),
		pedidotest.New(12, pedidotest.WithStatus(pedido.EnCamino), pedidotest.WithCourier(43)),
		pedidotest.New(13, pedidotest.WithStatus(pedido.Listo)),
	}
	for _, p := range fixtures {
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	active, err := suite.repository.GetActiveForCourier(ctx, kernel.MustNewID(42))
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(int64(10), active[0].ID().Int64())

	none, err := suite.repository.GetActiveForCourier(ctx, kernel.MustNewID(99))
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *PedidoRepositoryIntegrationTestSuite) assertPedidoCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&pedidorepo.PedidoDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestPedidoRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PedidoRepositoryIntegrationTestSuite))
}
