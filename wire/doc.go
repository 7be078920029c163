// Package wire defines the error contract returned to API callers and the
// projection from classified failures onto it.
//
// An Error is a flat, serializable record: status_code, error_code,
// message, and optional structured details. Project applies a Policy, a
// pure function from failure.Failure to Error, and guards its output:
// any status code outside [400,599] is replaced by a fixed
// invalid_policy_output record. DefaultPolicy covers the whole failure
// taxonomy with stable error codes:
//
//	malformed syntax        → 400 malformed_body
//	schema mismatch         → 400 invalid_payload
//	missing content type    → 415 missing_content_type
//	unsupported media type  → 415 unsupported_content_type
//	body too large          → 413 payload_too_large
//	unclassified            → 500 internal_error
package wire
