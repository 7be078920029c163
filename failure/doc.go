// Package failure reduces raw body-binding errors to a closed set of
// failure kinds.
//
// Classify is the single entry point: it takes any error produced by the
// binder package (or by a hand-rolled decoder) and returns a Failure with
// exactly one Kind. The set of kinds is fixed (malformed syntax, schema
// mismatch, missing content type, unsupported media type, body too large)
// with KindUnclassified as the safety valve that keeps classification
// total when a decoder grows new failure modes.
//
// Classification is pure and deterministic, so a Failure can be produced
// concurrently for distinct requests without coordination. The original
// error stays reachable through Unwrap for logging; everything else on
// the Failure is safe to project to API consumers.
package failure
