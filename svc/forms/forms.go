// Package forms declares the interactive form definitions of the showcase:
// membership application, sponsor inquiry, payment checkout and
// authentication. Each constructor returns a formflow.Definition carrying the
// form's field set, input transforms, validation rules and simulated
// submission timing; the lifecycle itself lives in pkg/formflow.
package forms
