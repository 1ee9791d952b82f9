// Package audit records every state-changing action in an append-only
// trail. Entries are written in the same transaction as the change they
// describe, so the trail never disagrees with the data.
package audit
