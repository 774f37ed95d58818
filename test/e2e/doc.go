// Package e2e runs the tracker end to end in process.
//
// Each test builds the real stack (DuckDB file store, upstream client,
// scheduler, services, gin server) against test.FakeProxy, which plays the
// backend proxy, and drives it through the /api/v1 endpoints.
//
//	go test ./test/e2e/...
package e2e
