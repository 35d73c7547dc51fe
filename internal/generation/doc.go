// Package generation defines the boundary between the learning-content
// pipeline and external text-generation services. Implementations live
// under internal/platform; the orchestrator in internal/service decides
// what to do when a generator fails (it falls back to the offline mock
// generator, so generator errors never reach callers).
package generation
