// Package pairing holds the output type and the pieces of the pairing
// rules that are identical between the Dutch and Burstein systems:
// Pairing/SortPairings (spec §4.F) and the color-assignment rule tower
// (spec §4.D) that both orchestrators' bracket walks call once a pair
// is finalized.
package pairing
