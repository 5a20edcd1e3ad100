// Package invoiceform validates and normalizes raw invoice form submissions.
// Validation is a pure function of its input: every rule is applied
// independently and all violations are collected, so the form can highlight
// each offending field at once.
package invoiceform

import (
	"errors"
	"strings"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field-level messages surfaced inline next to the offending input.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// Form field names as submitted by the invoice form.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// NormalizedInput is the typed, business-valid shape of a submitted invoice
// form. The id and date are deliberately absent: they are assigned by the
// system, never by the user.
type NormalizedInput struct {
	CustomerID string
	Amount     decimal.Decimal // major units, strictly > 0
	Status     domain.InvoiceStatus
}

// Result is the discriminated outcome of validation: either Data is usable
// (Valid() is true) or FieldErrors holds the per-field messages. A field
// absent from FieldErrors passed its own rules even when the overall result
// is invalid.
type Result struct {
	Data        NormalizedInput
	FieldErrors map[string][]string
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// rawForm is the shape rules for the string fields, expressed as validator
// tags. The amount is handled separately because it needs decimal coercion,
// not just shape checking.
type rawForm struct {
	CustomerID string `validate:"required"`
	Status     string `validate:"required,oneof=pending paid"`
}

var validate = validator.New()

// Validate applies the invoice form rules to a raw field->value mapping and
// returns either normalized values or the accumulated field errors. It never
// mutates the input map and has no side effects.
func Validate(form map[string]string) Result {
	fieldErrors := make(map[string][]string)

	raw := rawForm{
		CustomerID: strings.TrimSpace(form[FieldCustomerID]),
		Status:     strings.TrimSpace(form[FieldStatus]),
	}
	if err := validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "CustomerID":
					fieldErrors[FieldCustomerID] = append(fieldErrors[FieldCustomerID], MsgSelectCustomer)
				case "Status":
					fieldErrors[FieldStatus] = append(fieldErrors[FieldStatus], MsgSelectStatus)
				}
			}
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form[FieldAmount]))
	if err != nil || !amount.GreaterThan(decimal.Zero) {
		fieldErrors[FieldAmount] = append(fieldErrors[FieldAmount], MsgAmountPositive)
	}

	if len(fieldErrors) > 0 {
		return Result{FieldErrors: fieldErrors}
	}

	return Result{Data: NormalizedInput{
		CustomerID: raw.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(raw.Status),
	}}
}
