package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanVersion(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"v1.2.3", "v1.2.3"},
		{"v1.2.3-rc.1", "v1.2.3-rc.1"},
		{"v1.2.3+dirty", "v1.2.3"},
		{"v0.1.1-0.20250514080944-bb77f30c7175", "v0.1.1"},
		{"v0.1.1-0.20250514080944-bb77f30c7175+dirty", "v0.1.1"},
		{"v0.3.5-edfdd54", "v0.3.5-edfdd54"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, cleanVersion(tc.input))
		})
	}
}

func TestGenerateBanner(t *testing.T) {
	banner := GenerateBanner("v1.2.3+dirty", "0123456789abcdef")

	assert.Contains(t, banner, "outdated")
	assert.Contains(t, banner, "v1.2.3")
	assert.NotContains(t, banner, "dirty")
	assert.Contains(t, banner, "0123456")
	assert.NotContains(t, banner, "0123456789")

	assert.Contains(t, GenerateBanner("", ""), "(devel)")
}
