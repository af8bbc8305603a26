// Package store persists hello events to DynamoDB.
//
// A [Store] writes one item per event into the hello_events table, keyed by
// email. Writes are unconditional: a second event for the same email
// overwrites the first.
//
// # Targets
//
// [Open] builds the DynamoDB client from a [region.Location]:
//
//   - [region.Local] uses placeholder credentials and the explicit endpoint,
//     for DynamoDB Local.
//   - [region.WellKnown] uses the default credential chain for that region.
//
// # Errors
//
// Every failure is returned as a [*greeting.Error] of kind store. The
// category is the DynamoDB error code, or Unknown when the response could not
// be parsed. SDK error types never escape this package.
package store
