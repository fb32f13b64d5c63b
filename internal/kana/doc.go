// Package kana converts between the two Japanese syllabaries. The
// conversion is a fixed codepoint shift and knows nothing about words
// or meaning.
package kana
