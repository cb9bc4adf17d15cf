// Package environment names the deployment environments and carries the
// current one through request contexts so handlers and log records can
// tell a development server from production.
package environment
