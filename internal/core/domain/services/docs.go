// Package services provides the domain services that drive the plan model: the local
// search that walks from an initial plan through its neighbors, and the Planner that
// combines an initial-plan strategy with that search for a given fleet and task set.
package services
