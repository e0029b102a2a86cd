// Package errors provides coded, actionable errors for startup and CLI
// failures.
//
// Each code maps to a registered template with a category, a short message
// and a longer detail. Call sites add what they know:
//
//	return errors.New("E111").
//	    WithDetail(fmt.Sprintf("migration %s failed", name)).
//	    WithSuggestion("Check the SQL in the migrations directory").
//	    Wrap(err)
//
// Format renders the error for a terminal; Error returns "CODE: message".
// Two errors with the same code match under errors.Is.
package errors
