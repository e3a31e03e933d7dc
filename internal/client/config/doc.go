// Package config loads runtime settings for the WomShop CLI. Sources are
// layered: built-in defaults, then a .env file / environment variables, then
// an optional JSON file, then command-line flags. Later sources win.
package config
