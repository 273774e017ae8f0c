package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Pattern Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryPattern,
		Message:  "Invalid route template",
		Detail:   "The path template or expression could not be compiled.",
		DocURL:   "https://pathway.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryPattern,
		Message:  "Unbalanced optional group",
		Detail:   "Every \"[\" in a template needs a matching \"]\". Escape literal brackets with a backslash.",
		DocURL:   "https://pathway.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryPattern,
		Message:  "Dangling parameter marker",
		Detail:   "A \":\" must be followed by a parameter name. Escape a literal colon with a backslash.",
		DocURL:   "https://pathway.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryPattern,
		Message:  "Duplicate parameter name",
		Detail:   "Each parameter name may appear only once in a template.",
		DocURL:   "https://pathway.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryPattern,
		Message:  "Invalid constraint expression",
		Detail:   "A parameter constraint must be a valid regular expression.",
		DocURL:   "https://pathway.dev/docs/errors/E005",
	},

	// ============================================
	// Registration Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryRegistration,
		Message:  "Duplicate route name",
		Detail:   "Route names are flat across the whole tree; every route needs a unique name.",
		DocURL:   "https://pathway.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryRegistration,
		Message:  "Route not found",
		Detail:   "No route is registered under the given name.",
		DocURL:   "https://pathway.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategoryRegistration,
		Message:  "Invalid route nesting",
		Detail:   "Regex routes cannot have children, and a regex child can only nest under a fixed-path parent.",
		DocURL:   "https://pathway.dev/docs/errors/E022",
	},

	// ============================================
	// Assembly Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryAssembly,
		Message:  "Missing route parameter",
		Detail:   "A required parameter was not supplied and the route has no default for it.",
		DocURL:   "https://pathway.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryAssembly,
		Message:  "Invalid optional nesting",
		Detail:   "A nested optional group was supplied, but the parameter of its enclosing group was not. The enclosing group cannot be emitted without it.",
		DocURL:   "https://pathway.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryAssembly,
		Message:  "Route not assemblable",
		Detail:   "Regex routes have no derivable path template. Supply a reverse template to make one assemblable.",
		DocURL:   "https://pathway.dev/docs/errors/E042",
	},

	// ============================================
	// Configuration Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid route definition document",
		Detail:   "The definition document could not be decoded as YAML or JSON.",
		DocURL:   "https://pathway.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Definition source unreadable",
		Detail:   "The route definition file or object could not be read.",
		DocURL:   "https://pathway.dev/docs/errors/E061",
	},

	// ============================================
	// CLI Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryCLI,
		Message:  "Unknown routes source",
		Detail:   "The routes source must be a file path or an s3://bucket/key URL.",
		DocURL:   "https://pathway.dev/docs/errors/E080",
	},
	"E081": {
		Category: CategoryCLI,
		Message:  "Invalid parameter argument",
		Detail:   "Parameters are given as name=value pairs.",
		DocURL:   "https://pathway.dev/docs/errors/E081",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
