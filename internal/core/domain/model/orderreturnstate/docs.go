// Package orderreturnstate contains the OrderReturnState aggregate: the status of a
// merchandise return, with localized names and a badge color and no behavioral flags.
package orderreturnstate
