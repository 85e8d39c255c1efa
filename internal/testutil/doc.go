// Package testutil holds helpers shared by tests across packages. It must not
// import other internal packages so that any of them can use it.
package testutil
