// Package config handles configuration loading and defaults.
//
// Configuration is merged from five sources in priority order (later wins):
//
//  1. Built-in defaults
//  2. User config file (~/.taskdeck/taskdeck.toml, or the OS config dir)
//  3. Project config file (taskdeck.toml or .taskdeck.toml in the current
//     directory)
//  4. Environment variables (TASKDECK_STORE, TASKDECK_LOG_LEVEL, NO_COLOR)
//  5. CLI flags (-store, -log-level, -no-color)
package config
