package phonetic

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MecabAnalyzer shells out to an installed mecab binary.
type MecabAnalyzer struct {
	binary string
}

// NewMecabAnalyzer checks that binary (default "mecab") is on PATH.
func NewMecabAnalyzer(binary string) (*MecabAnalyzer, error) {
	if binary == "" {
		binary = "mecab"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("mecab is not installed or not in PATH: %w", err)
	}
	return &MecabAnalyzer{binary: path}, nil
}

// Parse feeds text to mecab on stdin and returns its output.
func (m *MecabAnalyzer) Parse(ctx context.Context, text string) (string, error) {
	cmd := exec.CommandContext(ctx, m.binary)
	cmd.Stdin = strings.NewReader(text + "\n")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("mecab failed: %w\nOutput: %s", err, stderr.String())
	}
	return string(output), nil
}

// Name returns the analyzer name
func (m *MecabAnalyzer) Name() string {
	return "mecab"
}
