// Package driving defines the interfaces through which callers invoke the
// core (primary ports in hexagonal architecture). The CLI adapter drives the
// store through these interfaces; in the dashboard deployment the chat and
// search views call the same operations in-process.
package driving
