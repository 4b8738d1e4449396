package processor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

// BuildTOC walks the template's declared sections in order and emits an
// entry for each one present in the document. The page number is the
// section's 1-based position in the declared list, a placeholder rather
// than real pagination. Undeclared sections never appear.
func BuildTOC(sections map[string]Section, tmpl template.Descriptor) []TOCEntry {
	toc := []TOCEntry{}
	for i, name := range tmpl.Sections {
		sec, ok := sections[name]
		if !ok {
			continue
		}
		toc = append(toc, TOCEntry{
			Section:   name,
			Title:     sectionTitle(name),
			Page:      i + 1,
			WordCount: sec.WordCount,
		})
	}
	return toc
}

// SummarizeCitations flattens per-section citations in document order
// and deduplicates them: numeric citations by individual reference
// number, author-year citations by the (author, year) pair. A later
// occurrence in the document overwrites the earlier entry but keeps its
// original position in the output.
func SummarizeCitations(sections map[string]Section, order []string, styleID string) CitationSummary {
	var all []Citation
	for _, name := range order {
		all = append(all, sections[name].Citations...)
	}

	var keyOrder []string
	unique := make(map[string]Citation)
	record := func(key string, c Citation) {
		if _, seen := unique[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		unique[key] = c
	}

	for _, c := range all {
		switch c.Type {
		case "numeric":
			for _, n := range c.Numbers {
				record(fmt.Sprintf("n:%d", n), c)
			}
		case "author_year":
			record(fmt.Sprintf("a:%s_%d", c.Author, c.Year), c)
		}
	}

	deduped := make([]Citation, 0, len(keyOrder))
	for _, key := range keyOrder {
		deduped = append(deduped, unique[key])
	}

	return CitationSummary{
		TotalCitations:  len(all),
		UniqueCitations: len(unique),
		CitationStyle:   styleID,
		Citations:       deduped,
	}
}

// ComputeStatistics sums word, citation, equation, and reference counts
// across all sections and records a per-section word breakdown.
func ComputeStatistics(sections map[string]Section) Statistics {
	stats := Statistics{SectionBreakdown: make(map[string]int, len(sections))}
	for name, sec := range sections {
		stats.TotalWords += sec.WordCount
		stats.TotalCitations += len(sec.Citations)
		stats.TotalEquations += len(sec.Equations)
		stats.TotalReferences += len(sec.References)
		stats.SectionBreakdown[name] = sec.WordCount
	}
	stats.TotalSections = len(sections)
	return stats
}

// sectionTitle turns a canonical name into display form, e.g.
// "literature_review" -> "Literature Review".
func sectionTitle(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
