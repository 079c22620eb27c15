// Package diagnostics turns the reports of a pytest run into the text shown
// to the student: assertion details, the run summary, failing test details
// and the FAILED lines of the captured output.
//
// Everything here is a pure function of its arguments.
package diagnostics
