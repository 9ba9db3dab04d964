package kanoon

import (
	"encoding/json"
	"log"
	"sort"

	"legalease-rag/models"
)

// resolveDocs locates the list of document records inside an untyped
// response payload. Preference order: a top-level array, a "docs" field, a
// "results" field, then the first remaining field (sorted key order, since
// decoded maps carry no field order) holding a non-empty array. A
// docs/results field holding a non-array counts as a schema fault.
func resolveDocs(payload any) ([]any, bool) {
	switch data := payload.(type) {
	case []any:
		return data, true
	case map[string]any:
		for _, key := range []string{"docs", "results"} {
			if raw, present := data[key]; present {
				list, ok := raw.([]any)
				return list, ok
			}
		}
		keys := make([]string, 0, len(data))
		for key := range data {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if list, ok := data[key].([]any); ok && len(list) > 0 {
				log.Printf("Found documents under key: %s", key)
				return list, true
			}
		}
	}
	return nil, false
}

// normalizeDoc maps one raw document record onto the canonical summary
// shape using first-present-wins fallbacks per field. Origin and priority
// are fixed here and never change afterward.
func normalizeDoc(raw any) (models.CaseSummary, bool) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return models.CaseSummary{}, false
	}

	docID := firstString(doc, "tid", "id", "doc_id")
	summary := models.CaseSummary{
		Title:     firstString(doc, "title", "case_name", "name"),
		SourceID:  docID,
		Snippet:   firstString(doc, "headline", "summary", "description"),
		DocSource: firstString(doc, "docsource", "court", "source"),
		DocSize:   intValue(doc["docsize"]),
		Origin:    models.OriginRemote,
		Priority:  models.PriorityHigh,
	}
	if summary.Title == "" {
		summary.Title = "Untitled Case"
	}
	if summary.DocSource == "" {
		summary.DocSource = "Indian Kanoon"
	}
	if docID != "" {
		summary.URL = documentBaseURL + "/" + docID + "/"
	}
	return summary, true
}

// firstString returns the first non-empty string value among the given
// keys.
func firstString(doc map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, present := doc[key]; present {
			if s := stringValue(value); s != "" {
				return s
			}
		}
	}
	return ""
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func intValue(value any) int {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil && i > 0 {
			return int(i)
		}
	}
	return 0
}
