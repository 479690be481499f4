// Package errors provides structured errors for the teamfight command.
//
// An Error carries a code, a category, a one-line message and optional
// detail, suggestion and wrapped cause. Codes are registered with a default
// message and detail:
//
//	err := errors.New("T002").
//	    WithDetail(`"localhost" has no port`).
//	    WithSuggestion(`Use host:port, for example "localhost:3000".`)
//
//	errors.Print(os.Stderr, err)
//	// ERROR T002: Invalid listen address
//	//
//	//   "localhost" has no port
//	//
//	//   Hint: Use host:port, for example "localhost:3000".
//
// # Categories
//
//   - config: configuration file, environment and flag problems
//   - storage: the local data file
//   - runtime: starting or running the app
//   - cli: command usage
package errors
