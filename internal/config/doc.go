// Package config loads, normalizes, and validates vangogh configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// VANGOGH_DATA_DIR and MET_API_BASE_URL. Dataset file names resolve against
// the data directory so a checkout with a data/ folder works without any
// configuration file at all.
package config
