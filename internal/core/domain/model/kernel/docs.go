// Package kernel holds primitives shared by every aggregate of the order
// management domain: the UUID identifier value object and the Clock used to
// evaluate time-dependent rules deterministically.
package kernel
