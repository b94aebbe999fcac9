// Package model defines shared data structures.
package model

// Config defines test settings resolved from flags and the config file.
type Config struct {
	Pack     string
	Words    int
	Seed     int64
	Seeded   bool
	Duration int // seconds; 0 disables the time limit
}
