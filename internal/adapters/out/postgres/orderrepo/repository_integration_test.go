package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tailor/internal/adapters/out/postgres/orderrepo"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(orderrepo.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_audit_entries").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TO/00001", nil)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateReference_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestOrder("TO/00001", nil)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("TO/00001", nil)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	delivery := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	original := suite.createTestOrder("TO/00007", &delivery)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.IsEqual(retrieved))
	suite.Equal("TO/00007", retrieved.Reference())
	suite.Equal("Amina Uwase", retrieved.Customer().Name())
	suite.Equal("0788123456", retrieved.Customer().Phone())
	suite.Equal(order.Suit, retrieved.Garment().Type())
	suite.Equal("wool", retrieved.Garment().Fabric())
	suite.InDelta(42.5, retrieved.Measurements().Chest, 0.001)
	suite.True(decimal.NewFromInt(1000).Equal(retrieved.Payment().Total()))
	suite.True(decimal.NewFromInt(600).Equal(retrieved.BalanceDue()))
	suite.Equal("RWF", retrieved.Currency().Code())
	suite.Equal("FRw", retrieved.Currency().Symbol())
	suite.Require().NotNil(retrieved.DeliveryDate())
	suite.True(delivery.Equal(*retrieved.DeliveryDate()))
	suite.Equal(order.Draft, retrieved.Status())
	suite.True(retrieved.Preferences().Email)
	suite.False(retrieved.Preferences().Messaging)
	suite.Empty(retrieved.AuditTrail())

}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByReference_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder("S00042", nil)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByReference(ctx, "S00042")
	suite.Require().NoError(err)
	suite.True(original.IsEqual(retrieved))

	_, err = suite.repository.GetByReference(ctx, "S99999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAuditTrail() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TO/00002", nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.MarkReceived()
	suite.Require().NoError(err)
	_, err = testOrder.StartCutting()
	suite.Require().NoError(err)
	testOrder.SetPreferences(order.Preferences{Email: false, Messaging: true})

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	testOrder.MarkEntriesPersisted()

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Cutting, retrieved.Status())
	suite.False(retrieved.Preferences().Email)
	suite.True(retrieved.Preferences().Messaging)

	changes := retrieved.StatusChanges()
	suite.Require().Len(changes, 2)
	suite.Equal(order.Draft, changes[0].From())
	suite.Equal(order.Received, changes[0].To())
	suite.Equal(order.Received, changes[1].From())
	suite.Equal(order.Cutting, changes[1].To())
	suite.Empty(retrieved.PendingEntries())

}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TO/00003", nil)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAppendEntries_StoresNotesOnce() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("TO/00004", nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	testOrder.RecordNote("WhatsApp message sent to whatsapp:+250788123456")
	suite.Require().NoError(suite.repository.AppendEntries(ctx, testOrder))
	suite.Require().NoError(suite.repository.AppendEntries(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	trail := retrieved.AuditTrail()
	suite.Require().Len(trail, 1)
	suite.Equal(order.EntryNote, trail[0].Kind())
	suite.Equal("WhatsApp message sent to whatsapp:+250788123456", trail[0].Body())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextReference_IsSequential() {
	ctx := context.Background()

	first, err := suite.repository.NextReference(ctx)
	suite.Require().NoError(err)
	second, err := suite.repository.NextReference(ctx)
	suite.Require().NoError(err)

	suite.Regexp(`^TO/\d{5,}$`, first)
	suite.Regexp(`^TO/\d{5,}$`, second)
	suite.NotEqual(first, second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDueForDelivery_FiltersByDayAndStatus() {
	ctx := context.Background()

	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	at := day.Add(9 * time.Hour)
	tomorrow := day.AddDate(0, 0, 1)

	sewing := suite.createTestOrder("TO/00010", &at)
	ready := suite.createTestOrder("TO/00011", &at)
	later := suite.createTestOrder("TO/00012", &tomorrow)
	undated := suite.createTestOrder("TO/00013", nil)

	for _, o := range []*order.Order{sewing, ready, later, undated} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	_, err := sewing.StartSewing()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, sewing))
	_, err = ready.MarkReady()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, ready))
	_, err = later.StartSewing()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, later))

	due, err := suite.repository.GetDueForDelivery(ctx, day, tomorrow, order.InProgressStatuses())
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.True(sewing.IsEqual(due[0]))

	none, err := suite.repository.GetDueForDelivery(ctx, day, tomorrow, nil)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_CancelledContext_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(reference string, delivery *time.Time) *order.Order {
	customer, err := order.NewCustomer(kernel.NewUUID(), "Amina Uwase", "0788123456", "", "amina@example.com")
	suite.Require().NoError(err)

	garment, err := order.NewGarment(order.Suit, "wool", "navy", "")
	suite.Require().NoError(err)

	payment, err := order.NewPayment(decimal.NewFromInt(1000), decimal.NewFromInt(400))
	suite.Require().NoError(err)

	currency, err := kernel.NewCurrency("RWF", "FRw")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), reference, customer, order.Details{
		Garment:      garment,
		Measurements: order.Measurements{Chest: 42.5, Waist: 34},
		Payment:      payment,
		Currency:     currency,
		OrderDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate: delivery,
		Preferences:  order.DefaultPreferences(),
	})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
