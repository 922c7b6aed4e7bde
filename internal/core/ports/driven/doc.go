// Package driven defines interfaces that core services use to reach
// infrastructure: the artifact store, the PDF renderer and configuration.
// These are the "driven" ports in hexagonal architecture terminology.
//
// Implementations live in internal/adapters/driven.
package driven
