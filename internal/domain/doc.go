// Package domain defines the core entities of the learning-content
// pipeline: community posts as read-only inputs, flashcards and quiz
// questions as generated outputs, and the topic structures derived
// in between.
package domain
