// Package config builds loggers from JSON5 configuration files.
//
// A file names the logger, its output path and its level threshold:
//
//	{
//	  // written next to the binary
//	  name: "Checkout",
//	  path: "Logs/checkout.txt",
//	  level: "warning",
//	  console: true,
//	}
//
// Unknown level names are rejected when the file is parsed. An empty
// path falls back to filehandler.DefaultPath and an empty level to ALL.
package config
