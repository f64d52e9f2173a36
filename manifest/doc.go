// Package manifest loads declarative HCL command manifests and turns them
// into validated parameter specs. Go offers no introspection over function
// parameter names or defaults, so the declaration lives in data:
//
//	command "stamp" {
//	  description = "Append a marker to every line of a file."
//
//	  param "in_file"  { kind = "positional" }
//	  param "out_file" { kind = "positional" }
//	  param "create_new" {
//	    kind    = "named"
//	    default = false
//	  }
//	}
//
// Specs are constructed and validated at load time, shifting error detection
// from binding time to parse time, so a Command in hand is always bindable.
package manifest
