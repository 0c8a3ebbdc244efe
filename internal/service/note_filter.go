package service

import (
	"sort"

	"algo-notes-be/internal/dto"
)

// FilterNotes narrows a listing to one topic and/or one sub-topic. Empty filters match everything.
// Notes left without sub-topics after sub-topic filtering are dropped. The input is not modified.
func FilterNotes(notes []*dto.NoteResponse, topic, subTopic string) []*dto.NoteResponse {
	if topic == "" && subTopic == "" {
		return notes
	}

	filtered := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		if topic != "" && n.Topic != topic {
			continue
		}
		if subTopic == "" {
			filtered = append(filtered, n)
			continue
		}

		var kept []dto.SubTopicResponse
		for _, st := range n.SubTopics {
			if st.Name == subTopic {
				kept = append(kept, st)
			}
		}
		if len(kept) == 0 {
			continue
		}
		narrowed := *n
		narrowed.SubTopics = kept
		filtered = append(filtered, &narrowed)
	}
	return filtered
}

// Topics returns the distinct topics, sorted.
func Topics(notes []*dto.NoteResponse) []string {
	seen := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		seen[n.Topic] = struct{}{}
	}
	return sortedKeys(seen)
}

// SubTopics returns the distinct sub-topic names, sorted, optionally limited to one topic.
func SubTopics(notes []*dto.NoteResponse, topic string) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		if topic != "" && n.Topic != topic {
			continue
		}
		for _, st := range n.SubTopics {
			seen[st.Name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
