// Package port defines the typed external surface (spec.md §4.7/§6):
// inbound events the shell/presenter send in, outbound events/payloads the
// Session emits out, and Apply, which drives a session.Session with one
// inbound event and projects the resulting changes into outbound events.
// The Tunables configuration block is session.Config, not part of this
// package.
package port
