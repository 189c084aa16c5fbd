package commands

import (
	"errors"
	"strings"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new tailoring order
// in draft status.
//
// Example:
//
//	customer, _ := order.NewCustomer(customerID, "Aline", "0788123456", "", "aline@example.com")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "", customer, details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	reference, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string
	customer  order.Customer
	details   order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order. An empty
// reference is drawn from the order sequence by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	reference string,
	customer order.Customer,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		reference: strings.TrimSpace(reference),
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		details.Measurements.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference is empty when the handler should generate one.
func (c CreateOrderCommand) Reference() string {
	return c.reference
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}
