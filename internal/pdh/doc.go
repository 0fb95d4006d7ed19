/*
Package pdh wraps the Windows Performance Data Helper (PDH) API for reading
existing performance counters. It covers enumeration of the counter catalog,
counter path construction, query and counter resource lifetime, and typed
retrieval of formatted counter values. Creating custom counters is out of
scope.

# Layering

	┌─────────────────────────────────────────────┐
	│        ValueStream[T] (stream.go)           │  typed infinite pull
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│        Query / Counter (query.go)           │  handle lifetime
	│        Catalog (catalog.go)                 │  enumeration, expansion
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│        subsystem seam (api.go)              │  probe-then-fill helper
	│        pdh.dll procs (api_windows.go)       │
	└─────────────────────────────────────────────┘

All enumeration calls use the PDH two-phase size negotiation: a probe call
with a nil buffer reports the required length, a fill call with a buffer of
exactly that length returns the data. Skipping the probe or guessing a size
is not supported by the API.

A Counter must never outlive the Query it was attached to. The types keep a
back-reference from Counter to Query, but the invariant is ultimately the
caller's to uphold; violating it surfaces as a PDH_INVALID_HANDLE status from
the subsystem.

Queries, counters and streams are not safe for concurrent use. The intended
model is a single collection goroutine owning all of them.
*/
package pdh
