// Package orderstate contains the OrderState aggregate: a configurable order status with
// localized names and mail templates, a badge color and a set of behavioral flags
// (delivery slip, invoice, customer e-mail on entry, ...).
//
// Invariants:
//   - at least one localized name, each a generic name (see kernel.IsGenericName)
//   - a #RGB or #RRGGBB color
//   - flags are limited to the known Flag values
//
// Name uniqueness across active order states needs the repository, so it is enforced by
// the command handlers and reported with KindDuplicateName.
package orderstate
