// Package phonetic derives the reading of Japanese words from a
// morphological analyzer. Analyzers produce MeCab-style parses
// ("surface\tfeature,feature,...") and ExtractReading pulls the reading
// field out of the first token.
package phonetic
