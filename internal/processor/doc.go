// Package processor contains the core logic for turning Japanese words into
// flashcards. It asks the language model for a translation and an example
// sentence, looks up the reading with the morphological analyzer, and writes
// the finished cards. Batches fan out with one goroutine per word.
package processor
