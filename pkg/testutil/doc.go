// Package testutil provides helpers shared by flint-note tests.
//
// NewTestFS gives each test an isolated in-memory filesystem, and
// TestTemplate builds template directory trees on it declaratively.
// Test data lives inline in the tests themselves, never in fixture
// files on disk.
package testutil
