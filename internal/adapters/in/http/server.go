package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/generated/servers"
	"tailor/internal/pkg/errs"
)

// PortalHome is where the portal sends customers asking for an order that is
// not theirs.
const PortalHome = "/my"

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (string, error)
}

type TransitionApplier interface {
	Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (order.AuditEntry, error)
}

type TestNotificationSender interface {
	Handle(ctx context.Context, cmd commands.SendTestNotificationCommand) error
}

type CustomerOrdersLister interface {
	Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) (queries.ListCustomerOrdersQueryResponse, error)
}

type CustomerOrderGetter interface {
	Handle(ctx context.Context, query queries.GetCustomerOrderQuery) (queries.GetCustomerOrderQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      OrderCreator
	applyTransitionHandler  TransitionApplier
	testNotificationHandler TestNotificationSender

	// Query handlers
	listOrdersHandler CustomerOrdersLister
	getOrderHandler   CustomerOrderGetter

	defaultCurrency kernel.Currency
	logger          *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultCurrency applies to new orders that carry no currency code.
func NewServer(
	createOrderHandler OrderCreator,
	applyTransitionHandler TransitionApplier,
	testNotificationHandler TestNotificationSender,
	listOrdersHandler CustomerOrdersLister,
	getOrderHandler CustomerOrderGetter,
	defaultCurrency kernel.Currency,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:      createOrderHandler,
		applyTransitionHandler:  applyTransitionHandler,
		testNotificationHandler: testNotificationHandler,
		listOrdersHandler:       listOrdersHandler,
		getOrderHandler:         getOrderHandler,
		defaultCurrency:         defaultCurrency,
		logger:                  logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new order in draft.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := s.newCreateOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	reference, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:        cmd.OrderID().Bytes(),
		Reference: reference,
	})
}

// ApplyTransition handles POST /api/v1/orders/{orderId}/transitions/{transition}.
func (s *Server) ApplyTransition(
	ctx echo.Context,
	orderID servers.OrderId,
	transition servers.ApplyTransitionParamsTransition,
) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	t, err := order.ParseTransition(string(transition))
	if err != nil {
		return s.fail(ctx, err, "Unknown transition")
	}

	cmd, err := commands.NewApplyTransitionCommand(id, t)
	if err != nil {
		return s.fail(ctx, err, "Invalid transition")
	}

	entry, err := s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to apply transition")
	}

	return ctx.JSON(http.StatusOK, servers.StatusChange{
		OrderId:   orderID,
		OldStatus: entry.From().String(),
		NewStatus: entry.To().String(),
		ChangedAt: entry.CreatedAt(),
	})
}

// SendTestNotification handles POST /api/v1/orders/{orderId}/notifications/{channel}.
func (s *Server) SendTestNotification(
	ctx echo.Context,
	orderID servers.OrderId,
	channel servers.SendTestNotificationParamsChannel,
) error {
	var body servers.SendTestNotificationJSONRequestBody
	if ctx.Request().ContentLength > 0 {
		if err := ctx.Bind(&body); err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid request body",
			})
		}
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	ch, err := commands.ParseChannel(string(channel))
	if err != nil {
		return s.fail(ctx, err, "Unknown channel")
	}

	cmd, err := commands.NewSendTestNotificationCommand(id, ch, deref(body.Phone))
	if err != nil {
		return s.fail(ctx, err, "Invalid notification request")
	}

	if err = s.testNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to send notification")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ListMyOrders handles GET /my/tailor/orders - first page of the caller's orders.
func (s *Server) ListMyOrders(ctx echo.Context, params servers.ListMyOrdersParams) error {
	return s.listMyOrders(ctx, 1, params.Sortby, params.Filterby)
}

// ListMyOrdersPage handles GET /my/tailor/orders/page/{page}.
func (s *Server) ListMyOrdersPage(ctx echo.Context, page int, params servers.ListMyOrdersPageParams) error {
	return s.listMyOrders(ctx, page, params.Sortby, params.Filterby)
}

// GetMyOrder handles GET /my/tailor/orders/{orderId}. Orders that do not
// exist or belong to someone else redirect to the portal home.
func (s *Server) GetMyOrder(ctx echo.Context, orderID servers.OrderId) error {
	customerID, ok := CustomerIDFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return ctx.Redirect(http.StatusSeeOther, PortalHome)
	}

	query, err := queries.NewGetCustomerOrderQuery(customerID, id)
	if err != nil {
		return s.fail(ctx, err, "Invalid order request")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotOwned) || errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.Redirect(http.StatusSeeOther, PortalHome)
		}
		return s.fail(ctx, err, "Failed to load order")
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

func (s *Server) listMyOrders(ctx echo.Context, page int, sortBy *servers.SortBy, filterBy *servers.FilterBy) error {
	customerID, ok := CustomerIDFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var sortValue, filterValue string
	if sortBy != nil {
		sortValue = string(*sortBy)
	}
	if filterBy != nil {
		filterValue = string(*filterBy)
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID, page, sortValue, filterValue)
	if err != nil {
		return s.fail(ctx, err, "Invalid order list request")
	}

	res, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderPage(res))
}

func (s *Server) newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromBytes(body.Customer.Id[:])
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customer, err := order.NewCustomer(
		customerID,
		body.Customer.Name,
		deref(body.Customer.Phone),
		deref(body.Customer.Mobile),
		deref(body.Customer.Email),
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	details, err := s.newOrderDetails(body)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), deref(body.Reference), customer, details)
}

func (s *Server) newOrderDetails(body servers.NewOrder) (order.Details, error) {
	garmentType, err := order.ParseGarmentType(string(body.Garment.Type))
	if err != nil {
		return order.Details{}, err
	}

	garment, err := order.NewGarment(
		garmentType,
		deref(body.Garment.Fabric),
		deref(body.Garment.Color),
		deref(body.Garment.Instructions),
	)
	if err != nil {
		return order.Details{}, err
	}

	payment, err := parsePayment(body.TotalAmount, deref(body.AdvancePaid))
	if err != nil {
		return order.Details{}, err
	}

	currency := s.defaultCurrency
	if code := deref(body.CurrencyCode); code != "" {
		if currency, err = kernel.NewCurrency(code, deref(body.CurrencySymbol)); err != nil {
			return order.Details{}, err
		}
	}

	prefs := order.DefaultPreferences()
	if body.NotifyEmail != nil {
		prefs.Email = *body.NotifyEmail
	}
	if body.NotifyMessaging != nil {
		prefs.Messaging = *body.NotifyMessaging
	}

	details := order.Details{
		Garment:      garment,
		Measurements: fromMeasurements(body.Measurements),
		Payment:      payment,
		Currency:     currency,
		OrderDate:    body.OrderDate.Time,
		Preferences:  prefs,
	}
	if body.DeliveryDate != nil {
		d := body.DeliveryDate.Time
		details.DeliveryDate = &d
	}

	return details, nil
}

func parsePayment(total, advance string) (order.Payment, error) {
	totalAmount, err := decimal.NewFromString(strings.TrimSpace(total))
	if err != nil {
		return order.Payment{}, errs.NewValueIsInvalidErrorWithCause("total_amount", err)
	}

	advancePaid := decimal.Zero
	if advance = strings.TrimSpace(advance); advance != "" {
		if advancePaid, err = decimal.NewFromString(advance); err != nil {
			return order.Payment{}, errs.NewValueIsInvalidErrorWithCause("advance_paid", err)
		}
	}

	return order.NewPayment(totalAmount, advancePaid)
}

// fail maps application errors onto the API error body. Validation errors
// are the caller's fault; unknown orders are 404; the rest are logged.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
