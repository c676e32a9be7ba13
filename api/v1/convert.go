package api

import "sort"

// NewTopicEntries flattens a topic/types map into wire entries, sorted by
// topic name so responses are deterministic.
func NewTopicEntries(topics map[string][]string) []*TopicEntry {
	entries := make([]*TopicEntry, 0, len(topics))
	for topic, types := range topics {
		cp := make([]string, len(types))
		copy(cp, types)
		entries = append(entries, &TopicEntry{Topic: topic, Types: cp})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Topic < entries[j].Topic
	})
	return entries
}

// TopicEntriesMap rebuilds the map form of a wire entry list.
func TopicEntriesMap(entries []*TopicEntry) map[string][]string {
	topics := make(map[string][]string, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		types := make([]string, len(e.Types))
		copy(types, e.Types)
		topics[e.Topic] = types
	}
	return topics
}
