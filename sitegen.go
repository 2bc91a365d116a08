// Package sitegen generates marketing-site HTML from uploaded files.
// It classifies each uploaded artifact into a destination section of the
// site, extracts structured content (company, hero, services, team,
// contact) from free-form text, aggregates the results into a single
// content bundle, and injects the bundle into an HTML template by
// substituting {{TOKEN}} placeholders and expanding data-repeat regions.
//
// This package contains domain types, interfaces, and the pure
// classification/extraction/aggregation logic. Implementations with
// external dependencies live in subdirectories named after their primary
// dependency (e.g., goquery/, ollama/, sqlite/).
package sitegen
