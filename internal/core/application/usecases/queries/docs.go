// Package queries contains read-only use cases executed as raw SQL over the
// read model. Queries bypass the aggregate repositories and take no locks;
// a task list may be stale by the time a writer acts on it, and the race is
// resolved by the version check when the writer accepts.
package queries
