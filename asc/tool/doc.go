// Package tool holds the static App Store Connect tool registry: one
// descriptor per exposed tool capturing its HTTP method, URL path template,
// required arguments and query-parameter shaping rules. A single generic
// executor in the asc package consumes the descriptors; nothing here
// performs network activity.
package tool
