// Package errors provides structured, actionable error messages for the
// pathway CLI and tooling.
//
// The errors package implements an error system that:
//   - Points at the exact position in a route template
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with example templates
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - pattern: template and expression compilation errors
//   - registration: route tree construction errors
//   - assembly: reverse routing errors
//   - config: definition document errors
//   - cli: command usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E002").
//	    WithLocation("/blog[/:category", 5).
//	    WithExample("/blog[/:category]")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Unbalanced optional group
//	//
//	//   /blog[/:category
//	//        ^
//	//
//	//   Every "[" in a template needs a matching "]". Escape literal
//	//   brackets with a backslash.
//	//
//	//   Example:
//	//     /blog[/:category]
//	//
//	//   Learn more: https://pathway.dev/docs/errors/E002
package errors
