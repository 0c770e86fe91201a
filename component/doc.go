// Package component defines lifecycle interfaces for infrastructure
// components and a registry that starts them in order and stops them in
// reverse. The redis package's connection component implements these
// interfaces.
package component
