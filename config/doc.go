// Package config loads the rendering settings of hexturtle
// from a TOML or YAML file.
//
// Every field has a default, so that an empty file is valid:
//
//	font = "segment"
//	scale = 5
//	backend = "png"
//
//	[style]
//	line_width = 2
//	stroke = "#000000"
//
// Environment variables are expanded in the file path, the font
// and the output path.
package config
