// Package requestid assigns a request ID to every incoming request and
// makes it reachable from the request context, so error responses and log
// records can be correlated.
package requestid
