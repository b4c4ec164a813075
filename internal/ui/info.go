package ui

import (
	"fmt"
	"sort"
)

// PrintInfoSection prints a formatted block of key-value information.
func PrintInfoSection(title string, entries map[string]string) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, Colors.Cyan("%s", title))
	fmt.Fprintln(stdout, Colors.Normal("--------------------"))

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(stdout, "%-25s: %s\n", Colors.Bold("%s", k), entries[k])
	}
}

func PrintConfigInitInfo(configPath string) {
	fmt.Fprintf(stdout, "%s %s\n", Colors.Green("✓"), "Config file is ready")
	fmt.Fprintf(stdout, "   %s\n", Colors.Dim("Written to:  %s", configPath))
	fmt.Fprintf(stdout, "   %s\n", Colors.Dim("Edit it or override keys with OUTDATED_ environment variables"))
}
