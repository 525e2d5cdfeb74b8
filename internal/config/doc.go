// Package config loads Ember's configuration.
//
// Configuration comes from a TOML or YAML file, chosen by extension,
// overlaid on built-in defaults and then on EMBER_* environment variables:
//
//	[app]
//	tick_rate = 30
//
//	[log]
//	level = "debug"
//	file  = "ember.log"
//
//	[input]
//	repeat_window = "80ms"
//
//	[trace]
//	enabled    = true
//	categories = ["keyboard", "mouse"]
//
// A missing file is not an error; the defaults apply. Watcher reloads the
// file when it changes on disk.
package config
