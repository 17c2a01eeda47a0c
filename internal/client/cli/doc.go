// Package cli provides the interactive wastetrack command-line client.
//
// It wires configuration, the local key/value store, the auth gate, the
// capture forms and the report services into a read–eval–print loop. The
// commands a user sees depend on the role of the logged-in user:
//
//   - operators only capture waste through the multi-select tablet flow;
//   - admins capture through the desk form and also see the dashboard,
//     reports, export, deletion and recipient management.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, captureFlowFor and runREPL for details.
package cli
