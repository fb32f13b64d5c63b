// Package translation asks a language model for the English meaning of a
// Japanese word and for a Japanese example sentence using it. Answers are
// cached in memory so repeated words in a batch cost one request.
package translation
