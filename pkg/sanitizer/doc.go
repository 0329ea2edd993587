// Package sanitizer provides pure string transforms applied to raw form input
// before storage and validation.
//
// All transforms are idempotent: applying one to its own output returns the
// same value, so they are safe to run on every keystroke. Formatting functions
// never reject input; they shape whatever digits are present and leave
// validation to the validator package.
package sanitizer
