// Package publish forwards stored cells to a socket.io server. A Publisher
// is registered as a sheet observer, so the initial load, recalculated
// dependents and editor commits are all emitted as `cell` events.
package publish
