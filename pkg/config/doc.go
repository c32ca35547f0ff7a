// Package config provides the chat window display configuration.
//
// A [Chat] is loaded from a flat [props.Store] in one validate-then-commit
// step: every problem is recorded in a [loadreport.Report], and settings are
// only assigned when the report is error-free. Setters write each change
// straight back to the store.
package config
