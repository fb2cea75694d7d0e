package queries_test

import (
	"context"
	"testing"
	"time"

	"fabrication/internal/adapters/out/postgres/itemrepo"
	"fabrication/internal/adapters/out/postgres/orderrepo"
	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubAggregateTracker satisfies the repository tracker without recording.
type stubAggregateTracker struct{}

func (stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReturnsAllOrdersSortedByID() {
	ctx := context.Background()

	first := suite.seedOrder("ORD-2024-001", 7, 3)
	_ = suite.confirmOrder(first)
	second := suite.seedOrder("ORD-2024-002", 8, 4)

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(first.OrderUUID(), result[0].OrderUUID)
	suite.Equal("ORD-2024-001", result[0].OrderNumber)
	suite.Equal(int64(7), result[0].CustomerID)
	suite.Equal(int64(3), result[0].TeamID)
	suite.Equal(order.Scheduled.Code(), result[0].Status)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(order.InProgress.Code(), result[1].Status)
	suite.Less(result[0].ID, result[1].ID)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func (suite *GetAllOrdersQueryHandlerTestSuite) seedOrder(
	orderNumber string, customerID, teamID int64,
) *order.Order {
	newOrder, err := order.NewOrder(orderNumber, customerID, teamID)
	suite.Require().NoError(err)

	persisted, err := suite.orderRepo.Add(context.Background(), newOrder)
	suite.Require().NoError(err)
	return persisted
}

func (suite *GetAllOrdersQueryHandlerTestSuite) confirmOrder(aggregate *order.Order) *order.Order {
	suite.Require().NoError(aggregate.Confirm())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), aggregate))
	return aggregate
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
