// Package cli implements the interactive WomShop storefront client: a small
// REPL that logs in against the remote service, lists the product catalog,
// and shows product detail with reviews, pricing, and tags. It is a pure
// presentation layer over the session manager and the loaders; all state
// lives in those components and the CLI only renders snapshots and
// dispatches intents.
package cli
