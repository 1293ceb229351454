// Package models defines the entities the staffdesk client works with:
// employees, tasks, the authenticated principal and dashboard counters.
//
// Records always carry a server-assigned ID; drafts are the ID-less shapes
// sent on create (and, for employees, on full-record update). Validate
// methods enumerate required fields and enum membership and are applied when
// decoding server responses and before sending drafts.
package models
