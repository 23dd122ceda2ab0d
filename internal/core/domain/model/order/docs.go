// Package order contains the Order aggregate and its Status state machine.
//
// An order is created with caller-supplied fields, mutated in place through
// Update, and removable only while pending. The delivered status is
// terminal: a delivered order accepts no further changes of any kind.
package order
