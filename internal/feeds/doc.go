// Package feeds derives cutting parameters for a CNC router from fixed lookup tables.
//
// A calculation takes a machine, a cutter size class, a flute count, an aggression level,
// a material, a spindle speed and an output unit, and produces the feed rate, the depth
// of cut and the chip load. All tables are built once and never mutated, so Compute is
// safe to call from any number of goroutines.
package feeds
