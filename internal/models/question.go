package models

// Question is a single row of the questions table keyed by column name.
// Its shape is owned by whoever populates the table.
type Question map[string]any
