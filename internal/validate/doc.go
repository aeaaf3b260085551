// Package validate contains the pure field-validation rules for book records
// and quantity inputs.
//
// Validation collects every violation instead of stopping at the first one,
// so a caller can report all problems with a submission in a single pass.
// Numeric fields are parsed as part of validation and the parsed values are
// returned even when other fields are invalid - the caller never re-parses.
package validate
