package errors

// Template defines a registered error code.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

var registry = map[string]Template{
	// Configuration (E100-E109)
	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The server reads its site address and render options from chatapp.json (or chatapp.yaml) at startup.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json, .yaml or .yml.",
	},

	// Database (E110-E119)
	"E110": {
		Category: CategoryDatabase,
		Message:  "Failed to open database",
	},
	"E111": {
		Category: CategoryDatabase,
		Message:  "Database migration failed",
		Detail:   "Pending migrations are applied at startup; the server does not start with a partially migrated schema.",
	},
	"E112": {
		Category: CategoryDatabase,
		Message:  "Database unreachable",
	},

	// Server (E120-E129)
	"E120": {
		Category: CategoryServer,
		Message:  "Failed to listen",
	},
	"E121": {
		Category: CategoryServer,
		Message:  "Static file source unavailable",
	},

	// Server functions (E200-E209)
	"E200": {
		Category: CategoryServerFn,
		Message:  "Server function not found",
	},
	"E201": {
		Category: CategoryServerFn,
		Message:  "Server function registered twice",
		Detail:   "Each server function name maps to exactly one handler under /api/.",
	},
	"E202": {
		Category: CategoryServerFn,
		Message:  "Invalid server function name",
		Detail:   "Names must be non-empty and must not contain '/'.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
