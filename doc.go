// Package privates provides a comprehensive set of functions and types to
// track a personal collection of rentable items and the earnings they
// generate.
//
// The package owns two collections: the item list (newest first) and the
// earnings ledger (a running total plus an append-only history of signed
// adjustments). Every mutation goes through a [Tracker] method, is mirrored
// to the local store, and every visible surface is recomputed from scratch by
// [DeriveView]. There is no incremental update; the collections are small and
// the full recomputation is the intended contract.
package privates
