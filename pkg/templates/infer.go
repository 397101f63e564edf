package templates

import (
	"path"
	"path/filepath"
	"strings"
)

// InferNoteType derives a note's type from its position under the notes
// directory: the first path segment names the type. Notes sitting
// directly in the notes root, or under a generic container directory,
// get the fallback type. There is no frontmatter or content based
// override; template authors assign types by grouping notes into
// subdirectories.
func InferNoteType(relPath, fallback string) string {
	rel := path.Clean(filepath.ToSlash(relPath))
	rel = strings.Trim(rel, "/")

	idx := strings.Index(rel, "/")
	if idx <= 0 {
		return fallback
	}

	segment := rel[:idx]
	if segment == NotesDirName || segment == "examples" {
		return fallback
	}
	return segment
}

// ExtractTitle derives a note's title from its content, falling back to
// the filename. The first line starting with a top-level heading marker
// wins; this is a best-effort heuristic, not a markdown parse. Without a
// heading, the title is the base filename with its extension stripped
// and hyphens replaced by spaces.
func ExtractTitle(content, filename string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}

	base := path.Base(filepath.ToSlash(filename))
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.ReplaceAll(base, "-", " ")
}
