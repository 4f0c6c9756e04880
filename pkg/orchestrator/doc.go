// Package orchestrator wires the preview pipeline: classify the idea, seed and
// hydrate the content model, select and shuffle a preset, render it. Each
// stage feeds the next with no backward edges; a Session keeps the content
// model and the advisory vertical between calls so a reclassification only
// restarts preset selection.
package orchestrator
