// Package cli wires the roughdraw commands together.
//
//	roughdraw render diagram.excalidraw -f svg,png
//	roughdraw serve --addr :8080
//	roughdraw cache stats
//
// Every command reads the optional TOML config file, logs through a
// charmbracelet/log logger carried in the command context, and prints its
// status lines to stdout. Pass -v to log pipeline stages and cache lookups.
package cli
