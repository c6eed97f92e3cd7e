package orderstate

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Flag is one boolean behavior of an order state.
type Flag int

const (
	FlagUnknown Flag = iota
	// Loggable marks the order as validated (counted in sales statistics).
	Loggable
	Invoice
	Hidden
	SendEmail
	PdfInvoice
	PdfDelivery
	Shipped
	Paid
	Delivery
)

var flagNames = map[Flag]string{
	Loggable:    "logable",
	Invoice:     "invoice",
	Hidden:      "hidden",
	SendEmail:   "send_email",
	PdfInvoice:  "pdf_invoice",
	PdfDelivery: "pdf_delivery",
	Shipped:     "shipped",
	Paid:        "paid",
	Delivery:    "delivery",
}

// AllFlags lists the known flags in display order.
func AllFlags() []Flag {
	return []Flag{Loggable, Invoice, Hidden, SendEmail, PdfInvoice, PdfDelivery, Shipped, Paid, Delivery}
}

// ParseFlag resolves the storage name of a flag ("send_email", "delivery", ...).
func ParseFlag(name string) (Flag, error) {
	for flag, flagName := range flagNames {
		if flagName == name {
			return flag, nil
		}
	}
	return FlagUnknown, errs.NewValueIsInvalidErrorWithCause("flag", fmt.Errorf("%q is not an order state flag", name))
}

// String returns the storage name of the flag, which is also its form field name.
func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return "unknown"
}

func (f Flag) Validate() error {
	if _, ok := flagNames[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("flag", fmt.Errorf("%d is not an order state flag", f))
	}
	return nil
}

// IsToggleable reports whether the flag can be flipped from the order states grid.
func (f Flag) IsToggleable() bool {
	return f == Delivery || f == Invoice || f == SendEmail
}

// Flags is a bit set of Flag values.
type Flags uint16

// NewFlags returns a set with the given flags switched on. Unknown flags are ignored.
func NewFlags(flags ...Flag) Flags {
	var fs Flags
	for _, f := range flags {
		fs = fs.With(f, true)
	}
	return fs
}

func (fs Flags) Has(f Flag) bool {
	if f.Validate() != nil {
		return false
	}
	return fs&f.bit() != 0
}

// With returns a copy of fs with f switched on or off.
func (fs Flags) With(f Flag, on bool) Flags {
	if f.Validate() != nil {
		return fs
	}
	if on {
		return fs | f.bit()
	}
	return fs &^ f.bit()
}

// List returns the switched-on flags in AllFlags order.
func (fs Flags) List() []Flag {
	var on []Flag
	for _, f := range AllFlags() {
		if fs.Has(f) {
			on = append(on, f)
		}
	}
	return on
}

func (f Flag) bit() Flags {
	return 1 << (f - 1)
}
