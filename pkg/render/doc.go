// Package render resolves presets against a content model. Render walks every
// block in order, substitutes the placeholder tokens in its properties and
// hands the result to the block renderer registered for its kind. Blocks with
// no registered renderer are skipped.
package render
