// Package queries contains read operations. Handlers read PostgreSQL directly
// through GORM and return flat views; nothing here mutates state.
package queries
