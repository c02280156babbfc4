// Package config loads the settings of a geotopo run from a YAML or TOML
// file, fills in defaults, validates them and converts the analysis section
// into topology options.
//
// Relative paths in the file are resolved against the directory of the file
// itself, so a config can be moved together with the model it describes.
package config
