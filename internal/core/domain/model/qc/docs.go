// Package qc captures quality-control review outcomes for submitted drafts.
//
// A review is recorded once and never edited. Orders whose drafts are
// rejected carry the reviewer's comments back to the writer through the
// order's rework flow; the review records themselves stay untouched as
// an audit trail of every verdict ever given.
package qc
