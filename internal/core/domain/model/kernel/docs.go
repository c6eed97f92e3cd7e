// Package kernel provides the value objects shared by the order state and order return
// state aggregates: UUID identifiers, back-office languages, localized strings and hex colors.
//
// Value objects are immutable and validate on construction; their zero values are invalid.
package kernel
