// Package config loads and watches the server configuration.
//
// Configuration is a TOML file with sections for the server identity,
// pool sizes, queue capacities, logging, and handler scripts. A missing
// file yields defaults; missing keys merge over defaults. A Watcher can
// follow the file and deliver each valid updated snapshot to its
// subscribers; which fields take effect is up to the subscriber.
package config
