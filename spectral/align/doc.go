// Package align brings a batch of normalized spectral records onto one
// shared wavelength grid.
//
// The intended call order is:
//
//  1. [CommonRange]: intersect the wavelength extents of the batch
//  2. [Truncate]: clip every series to that interval
//  3. [Align]: resample every series onto one reference record's grid
//
// CommonRange failure is batch-fatal: truncation and alignment must not
// run without a valid shared interval. Align assumes its preconditions
// hold and re-validates only domain overlap, rejecting records that share
// no wavelengths with the reference grid instead of silently
// extrapolating values for them.
package align
