// Package service orchestrates the learning-content pipeline. It owns
// strategy selection, result caching, and the fallback decision: any
// failure or absence of the external generator degrades to the
// deterministic mock content rather than surfacing an error.
package service
