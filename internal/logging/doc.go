// Package logging provides the structured logger used across matreduce.
// Components depend on the small Logger interface; the backend is zerolog,
// either as console lines or as JSON.
package logging
