// Package panel is the typed model behind the pharmacy and courier panels.
//
// A panel owns a Registry of orders split into buckets, sends one backend
// request per user action and, only after a successful response, applies
// one local mutation and re-renders the affected buckets. Feedback goes
// through a Notifier (self-expiring toasts) and detail content through
// Modals. Nothing here touches a DOM: a Renderer receives plain views.
//
// Panels are driven one action at a time. The registry, notifier and modals
// are still safe to use from timer goroutines.
package panel
