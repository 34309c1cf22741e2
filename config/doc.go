// Package config builds dispatch trees from declarative sources: TOML
// files (Load, Parse) and environment variables (FromEnv). Both return
// a *frond.Dispatch that can be customized further before Apply, so
// file-driven and code-driven configuration compose.
package config
