package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile creates a file with the given content, creating parent
// directories as needed
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(name, "/")))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SeedRepo creates a set of repository files with default content under
// the given root. Paths are repository-style, slash-separated.
func SeedRepo(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		WriteFile(t, root, p, "content of "+p)
	}
}

// Locale builds one locale variant of a configuration document from type
// entry triples (source, folder, pattern).
func Locale(name string, entries ...[3]string) string {
	var sb strings.Builder
	sb.WriteString(`  <Locale name="` + name + `">` + "\n")
	for _, e := range entries {
		sb.WriteString("    <Type>\n")
		sb.WriteString("      <Source>" + e[0] + "</Source>\n")
		sb.WriteString("      <Destination>\n")
		sb.WriteString("        <Folder>" + e[1] + "</Folder>\n")
		sb.WriteString("        <Pattern>" + e[2] + "</Pattern>\n")
		sb.WriteString("      </Destination>\n")
		sb.WriteString("    </Type>\n")
	}
	sb.WriteString("  </Locale>\n")
	return sb.String()
}

// Document wraps locale variants into a full configuration document.
func Document(locales ...string) string {
	return "<NewElements>\n" + strings.Join(locales, "") + "</NewElements>\n"
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
