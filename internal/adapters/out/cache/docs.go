// Package cache implements the order read cache port on an in-process
// TTL cache. It keeps reads fast between refreshes while mutations force
// the next read back to the upstream order service.
package cache
