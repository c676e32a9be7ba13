package topiccache

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/meshgraph/meshgraph/pkg/guid"
	"go.uber.org/zap"
)

// TopicToTypes maps a topic name to the ordered multiset of type names
// registered on it. Duplicates are kept on purpose: every (participant, type)
// registration contributes one element, so the slice length is the
// registration count for that topic.
type TopicToTypes map[string][]string

// Clone returns a deep copy.
func (t TopicToTypes) Clone() TopicToTypes {
	c := make(TopicToTypes, len(t))
	for topic, types := range t {
		cp := make([]string, len(types))
		copy(cp, types)
		c[topic] = cp
	}
	return c
}

// TopicCache tracks which participants advertise which topics with which
// types, as discovery events arrive. It keeps two views of the same
// registration facts: a cumulative topic index and a per-participant
// breakdown. One mutex guards both so they can never drift apart.
type TopicCache struct {
	// Guards topicToTypes and participantToTopics, for atomic access to each
	// individually as well as to keep their topic sets in sync.
	mu sync.Mutex

	// Topic name to the types seen on that topic, across all participants.
	// Topics are one to many: generic services such as loggers and monitors
	// can legitimately discover multiple types on the same topic.
	topicToTypes TopicToTypes

	// Participant GUID to that participant's own topic/type registrations.
	participantToTopics map[guid.GUID]TopicToTypes

	logger *zap.Logger
}

func New(logger *zap.Logger) *TopicCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TopicCache{
		topicToTypes:        make(TopicToTypes),
		participantToTopics: make(map[guid.GUID]TopicToTypes),
		logger:              logger,
	}
}

// AddTopic records one (participant, topic, type) registration fact.
// The same triple may be added more than once; each call appends one
// element to the multisets in both indices. It always reports a change.
func (c *TopicCache) AddTopic(participant guid.GUID, topicName, typeName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.topicToTypes[topicName] = append(c.topicToTypes[topicName], typeName)

	topics, ok := c.participantToTopics[participant]
	if !ok {
		topics = make(TopicToTypes)
		c.participantToTopics[participant] = topics
	}
	topics[topicName] = append(topics[topicName], typeName)

	c.logger.Debug("adding topic",
		zap.String("topic", topicName),
		zap.String("type", typeName),
		zap.Stringer("participant", participant),
	)

	return true
}

// RemoveTopic retracts one previously added registration fact. Only the
// first matching occurrence of typeName is removed, so identical
// registrations from other participants keep their count. Empty topic
// entries are erased, and a participant entry is erased once its last topic
// is gone. Removing a fact that was never added is not an error; it is
// logged and reported as no change.
func (c *TopicCache) RemoveTopic(participant guid.GUID, topicName, typeName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	types, ok := c.topicToTypes[topicName]
	if !ok {
		c.logger.Debug("unexpected removal on topic",
			zap.String("topic", topicName),
			zap.String("type", typeName),
		)
		return false
	}

	types, ok = removeFirst(types, typeName)
	if !ok {
		c.logger.Debug("unexpected removal on topic",
			zap.String("topic", topicName),
			zap.String("type", typeName),
		)
		return false
	}
	if len(types) == 0 {
		delete(c.topicToTypes, topicName)
	} else {
		c.topicToTypes[topicName] = types
	}

	topics, pok := c.participantToTopics[participant]
	ptypes, tok := topics[topicName]
	if pok && tok {
		if ptypes, ok = removeFirst(ptypes, typeName); ok {
			if len(ptypes) == 0 {
				delete(topics, topicName)
			} else {
				topics[topicName] = ptypes
			}
		}
		if len(topics) == 0 {
			delete(c.participantToTopics, participant)
		}
	} else {
		// The cumulative index knew the topic but this participant did not.
		// Discovery events can race, so this is only worth a trace.
		c.logger.Debug("unable to remove topic, does not exist",
			zap.String("topic", topicName),
			zap.String("type", typeName),
			zap.Stringer("participant", participant),
		)
	}

	return true
}

// removeFirst removes the first occurrence of v and reports whether one was
// found. Later duplicates are left in place.
func removeFirst(s []string, v string) ([]string, bool) {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...), true
		}
	}
	return s, false
}

// CloneParticipantTopics returns a deep copy of the given participant's
// topic map and whether the participant is known. Callers may use the copy
// without holding any lock.
func (c *TopicCache) CloneParticipantTopics(participant guid.GUID) (TopicToTypes, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	topics, ok := c.participantToTopics[participant]
	if !ok {
		return nil, false
	}
	return topics.Clone(), true
}

// CloneTopicToTypes returns a deep copy of the cumulative topic index.
func (c *TopicCache) CloneTopicToTypes() TopicToTypes {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.topicToTypes.Clone()
}

// CountParticipants sums the registration counts of every candidate
// fully-qualified name present in the cumulative index. Names that are not
// known contribute zero. A participant registering two types on the same
// topic is counted twice; that is the defined semantics, callers count
// matching endpoints rather than distinct participants.
func (c *TopicCache) CountParticipants(fqdns []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, fqdn := range fqdns {
		if types, ok := c.topicToTypes[fqdn]; ok {
			count += len(types)
		}
	}
	return count
}

// String renders both indices in deterministic order for logging. The
// format is not a stable machine-readable contract.
func (c *TopicCache) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString("Participant Info:\n")

	participants := make([]guid.GUID, 0, len(c.participantToTopics))
	for p := range c.participantToTopics {
		participants = append(participants, p)
	}
	sort.Slice(participants, func(i, j int) bool {
		return bytes.Compare(participants[i][:], participants[j][:]) < 0
	})
	for _, p := range participants {
		b.WriteString(p.String())
		b.WriteString("\n  Topics:\n")
		writeTopics(&b, c.participantToTopics[p], "    ")
	}

	b.WriteString("Cumulative TopicToTypes:\n")
	writeTopics(&b, c.topicToTypes, "  ")

	return b.String()
}

func writeTopics(b *strings.Builder, topics TopicToTypes, indent string) {
	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(indent)
		b.WriteString(name)
		b.WriteString(": ")
		for _, t := range topics[name] {
			b.WriteString(t)
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
}
