package order

import (
	"fmt"
	"strings"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// Customer is the snapshot of the contact an order belongs to. Phone and
// mobile are kept as entered; normalization happens at dispatch time.
type Customer struct {
	id     kernel.UUID
	name   string
	phone  string
	mobile string
	email  string
}

func NewCustomer(id kernel.UUID, name, phone, mobile, email string) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return Customer{}, errs.NewValueIsInvalidErrorWithCause("customer email", fmt.Errorf("%q is not an email address", email))
	}

	return Customer{
		id:     id,
		name:   name,
		phone:  strings.TrimSpace(phone),
		mobile: strings.TrimSpace(mobile),
		email:  email,
	}, nil
}

func (c Customer) ID() kernel.UUID {
	return c.id
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

func (c Customer) Mobile() string {
	return c.mobile
}

func (c Customer) Email() string {
	return c.email
}

// ContactPhone returns the phone number, falling back to the mobile number.
func (c Customer) ContactPhone() string {
	if c.phone != "" {
		return c.phone
	}
	return c.mobile
}

func (c Customer) Validate() error {
	if err := c.id.Validate(); err != nil {
		return err
	}
	if c.name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	return nil
}
