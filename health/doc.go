// Package health checks that the locale service is usable on this host.
//
// Checks cover the embedded timezone database, the locale tables, and a
// format-then-parse round trip through a formatter. A Runner executes
// registered checks in parallel under one timeout and reports them in
// registration order.
//
// # Status
//
// Results are Healthy, Degraded (usable with fallbacks, e.g. a locale that
// resolves to another), or Unhealthy. A Report's status is the worst of its
// results.
package health
