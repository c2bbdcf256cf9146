// Package config loads the dynlath CLI configuration from YAML and
// DYNLATH_* environment variables and turns it into edgelist options.
//
//	format: snapshots
//	delimiter: ","
//	node_type: int
//	timestamp_type: layout
//	timestamp_layout: "2006-01-02"
//	reindex: true
//	log_level: debug
package config
