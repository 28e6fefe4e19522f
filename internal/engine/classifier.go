// Package engine implements the semantic fidelity analysis core: element
// classification, property completeness checking, severity grading, and
// report assembly. Every function here is a pure transformation over
// in-memory element collections; model access happens before the engine
// runs.
package engine

import "github.com/monika2305/BIM/internal/model"

// Classify partitions a model's product elements into semantic categories,
// proxies, and the unclassified remainder.
//
// The wall slice must already be deduplicated across wall subtypes (see
// ifc.CollectWalls); walls, doors, windows, and proxies are disjoint type
// tags, so no further overlap handling is needed. An empty model is a
// defined input: every percentage is 0.
func Classify(total, walls, doors, windows, proxies []model.Element) model.ClassificationResult {
	semantic := len(walls) + len(doors) + len(windows)
	proxy := len(proxies)

	other := len(total) - semantic - proxy
	if other < 0 {
		other = 0
	}

	return model.ClassificationResult{
		Total:         len(total),
		Walls:         len(walls),
		Doors:         len(doors),
		Windows:       len(windows),
		Semantic:      semantic,
		Proxy:         proxy,
		OtherSemantic: other,
		SemanticPct:   percentage(semantic, len(total)),
		ProxyPct:      percentage(proxy, len(total)),
		OtherPct:      percentage(other, len(total)),
	}
}

// percentage returns count/total as a percentage, with 0 defined as the
// result for an empty total.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// ElementRefs projects elements into report listing rows, preserving order.
func ElementRefs(elements []model.Element) []model.ElementRef {
	if len(elements) == 0 {
		return nil
	}
	refs := make([]model.ElementRef, len(elements))
	for i, e := range elements {
		refs[i] = model.ElementRef{
			GlobalID: e.GlobalID,
			Name:     e.DisplayName(),
			TypeTag:  e.TypeTag,
		}
	}
	return refs
}
