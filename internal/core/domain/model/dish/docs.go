// Package dish contains the Dish entity, a menu item with an immutable
// identifier and validated mutable fields. Dishes have no lifecycle beyond
// creation and in-place update; the menu never shrinks.
package dish
