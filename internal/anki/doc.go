// Package anki builds Japanese vocabulary cards and writes them in Anki's
// plain-text import format: one "front;back" record per line.
package anki
