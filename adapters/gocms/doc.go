// Package gocms translates go-cms route and page snapshots into trails view
// contexts and exports the trails block definition in the shape go-cms
// expects, without importing go-cms directly. Callers decode the JSON
// snapshots go-cms emits into the lightweight structs here.
package gocms
