// Package cli parses the hjarta-config command line and runs it: the configuration
// tree is loaded through the application container, then printed, diffed against
// the defaults or written back as a single file.
package cli
