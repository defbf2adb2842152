// Package kernel provides the value objects shared by the planning domain model.
//
// The package includes:
//   - UUID: identifier of vehicles, tasks and plans
//   - Location: a cell of the delivery grid with Manhattan distance and step-by-step paths
//
// Both are immutable and safe for concurrent use once constructed.
package kernel
