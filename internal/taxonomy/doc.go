// Package taxonomy holds the static keyword tables behind topic analysis:
// surface-form keywords per knowledge domain, concept-pattern regular
// expressions, difficulty vocabularies, category buckets, and the curated
// catalog of predefined topics. Pure data; the only behavior is lookup.
package taxonomy
