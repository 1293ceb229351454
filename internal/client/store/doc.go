// Package store is the client-side state layer of the staffdesk console.
//
// A Store owns one state tree (Snapshot) made of three slices: the session
// (auth), the employee collection and the task collection. Each slice is
// mutated only by its owning store (Session or Collection) and every
// mutation is applied as one atomic commit. After each commit subscribers
// receive the full snapshot, in commit order.
//
// Operations suspend only while the remote call is in flight. Overlapping
// operations are not serialised: when two fetches of the same collection
// overlap, the one that settles last determines Items, and a fetch that
// settles after a create may drop the created record. Callers that need a
// stable list re-fetch after mutating.
//
// Snapshots share their Items backing arrays with the store and with each
// other. They must be treated as read-only.
package store
