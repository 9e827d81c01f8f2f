// Package reconcile merges the single-edition dataset into the legacy
// dataset: it loads and keys both sides, unions the country registries,
// matches athletes by identity, and synthesizes result rows from team
// rosters, athlete event lists and the medal table.
package reconcile
