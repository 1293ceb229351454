// Package cli provides the interactive staffdesk console.
//
// It wires configuration, the local state database, the REST adapter and the
// state store, then runs a REPL whose commands dispatch store operations and
// render the resulting snapshots. Commands that talk to protected endpoints
// require a credential; when the service rejects the credential the console
// signs out and asks for a new login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
