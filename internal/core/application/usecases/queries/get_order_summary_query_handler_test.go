package queries_test

import (
	"context"
	"testing"
	"time"

	"fabrication/internal/adapters/out/postgres/itemrepo"
	"fabrication/internal/adapters/out/postgres/orderrepo"
	"fabrication/internal/core/application/usecases/queries"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderSummaryQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	itemRepo  *itemrepo.GormItemRepository
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderSummaryQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
	suite.itemRepo = itemrepo.NewGormItemRepository(db)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE production_order_items RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_WindowAndDoor_ComputesFiguresAndTotals() {
	ctx := context.Background()

	persisted := suite.seedOrder("ORD-2024-001")
	suite.seedItem(persisted.ID(), "Window", 1000, 1200, 2)
	suite.seedItem(persisted.ID(), "Door", 900, 2100, 1)

	query, err := queries.NewGetOrderSummaryQuery(persisted.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(persisted.ID(), summary.OrderID)
	suite.Require().Len(summary.Items, 2)

	window := summary.Items[0]
	suite.Equal("Window", window.ProductType)
	suite.InDelta(8.8, window.Figures.ProfileMeters, 1e-9)
	suite.InDelta(2.4, window.Figures.GlassSquareMeters, 1e-9)
	suite.Equal(2, window.Figures.HardwareUnits)

	door := summary.Items[1]
	suite.Equal("Door", door.ProductType)
	suite.InDelta(6.0, door.Figures.ProfileMeters, 1e-9)
	suite.InDelta(1.89, door.Figures.GlassSquareMeters, 1e-9)
	suite.Equal(1, door.Figures.HardwareUnits)

	suite.InDelta(14.8, summary.Requirements.TotalProfileMeters, 1e-9)
	suite.InDelta(4.29, summary.Requirements.TotalGlassSquareMeters, 1e-9)
	suite.Equal(3, summary.Requirements.TotalHardwareUnits)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_OrderWithoutItems_ReturnsZeroTotals() {
	persisted := suite.seedOrder("ORD-2024-002")

	query, err := queries.NewGetOrderSummaryQuery(persisted.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(persisted.ID(), summary.OrderID)
	suite.Empty(summary.Items)
	suite.Zero(summary.Requirements.TotalProfileMeters)
	suite.Zero(summary.Requirements.TotalGlassSquareMeters)
	suite.Zero(summary.Requirements.TotalHardwareUnits)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderSummaryQuery(999)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderSummaryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderSummaryQuery constructor")
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedOrder(orderNumber string) *order.Order {
	newOrder, err := order.NewOrder(orderNumber, 7, 3)
	suite.Require().NoError(err)

	persisted, err := suite.orderRepo.Add(context.Background(), newOrder)
	suite.Require().NoError(err)
	return persisted
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedItem(
	orderID int64, productType string, widthMm, heightMm, quantity int,
) {
	item, err := order.NewItem(orderID, productType, widthMm, heightMm, quantity)
	suite.Require().NoError(err)

	_, err = suite.itemRepo.Add(context.Background(), item)
	suite.Require().NoError(err)
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
