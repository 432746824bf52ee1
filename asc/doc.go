// Package asc implements the core service of asc-mcp: it exposes a fixed
// catalogue of App Store Connect tools over MCP and dispatches each tool
// call as one authorized REST request against the App Store Connect API.
// The heavy lifting during instantiation lives in bootstrap.go; the dispatch
// pipeline lives in dispatch.go.
package asc
