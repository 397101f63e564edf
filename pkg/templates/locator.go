package templates

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/disnet/flint-note-sub011/pkg/logging"
	"github.com/disnet/flint-note-sub011/pkg/types"
)

// ListTemplates returns metadata for every template under root, sorted by
// ID. Hidden directories and names matching the ignore patterns are
// skipped. Candidates whose metadata cannot be loaded are skipped with a
// warning so one corrupt template never hides the others. An unreadable
// or missing root yields an empty list rather than an error.
func ListTemplates(root string, fsys types.FS, opts LoadOptions) []types.TemplateMetadata {
	opts = opts.withDefaults()
	logger := logging.GetLogger("templates.locator")
	logger.Trace().Str("root", root).Msg("Listing templates")

	entries, err := fsys.ReadDir(root)
	if err != nil {
		logger.Warn().Err(err).Str("root", root).Msg("Cannot read templates root")
		return nil
	}

	var metas []types.TemplateMetadata
	for _, entry := range entries {
		// Only consider directories
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		// Skip ignored patterns
		if shouldIgnore(name, opts.Ignore) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}

		meta, err := LoadTemplateMetadata(root, name, fsys)
		if err != nil {
			// Log the error but continue with other templates
			logger.Warn().
				Err(err).
				Str("template", name).
				Msg("Failed to load template metadata, skipping")
			continue
		}

		metas = append(metas, meta)
		logger.Trace().Str("template", meta.ID).Msg("Found template")
	}

	// Sort for consistent ordering
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].ID < metas[j].ID
	})

	logger.Debug().Int("count", len(metas)).Msg("Found templates")
	return metas
}

// shouldIgnore checks if a name matches any ignore pattern
func shouldIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
