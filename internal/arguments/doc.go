// Package arguments provides the built-in argument types: booleans, bounded
// numbers, strings in three modes, UUIDs and fixed keyword choices.
//
// Every type implements dispatchers.ArgumentType; types that can complete
// their own input also implement dispatchers.Suggester.
package arguments
