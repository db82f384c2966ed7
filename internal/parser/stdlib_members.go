package parser

// knownModules lists every standard-library module name the `lib std::`
// import statement accepts, and the member names each one exports. The
// parser validates imports against this table at parse time so an unknown
// module or member is a SyntaxError rather than a runtime surprise.
var knownModules = map[string]map[string]bool{
	"os": {
		"exit":         true,
		"current_time": true,
		"input":        true,
		"name":         true,
		"arch":         true,
	},
	"math": {
		"sqrt": true,
		"pow":  true,
		"PI":   true,
		"E":    true,
		"TAU":  true,
	},
	"list": {
		"new":     true,
		"size":    true,
		"add":     true,
		"reverse": true,
		"get":     true,
		"pop":     true,
		"remove":  true,
	},
	"utils": {
		"type":  true,
		"parse": true,
	},
	"string": {
		"length":  true,
		"split":   true,
		"find":    true,
		"replace": true,
		"push":    true,
		"trim":    true,
		"trim_l":  true,
		"trim_r":  true,
	},
}
