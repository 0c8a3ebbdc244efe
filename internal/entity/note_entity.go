package entity

import "time"

// Question is a single recorded problem entry.
type Question struct {
	Id        string
	Title     string
	Pattern   string
	Trick     string
	Error     string
	Edge      string
	CreatedAt time.Time
}

type SubTopic struct {
	Name      string
	Questions []Question
	CreatedAt time.Time
}

// Note is the top-level document, keyed by Topic.
// Id is empty until the note has been persisted once. Documents written by
// older clients carry an Id but no Version, which reads as zero.
type Note struct {
	Id        string
	Topic     string
	SubTopics []SubTopic
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewNote(topic string, now time.Time) *Note {
	return &Note{
		Topic:     topic,
		SubTopics: []SubTopic{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (n *Note) IsNew() bool {
	return n.Id == ""
}

// SubTopic returns the first sub-topic whose name matches exactly, or nil.
func (n *Note) SubTopic(name string) *SubTopic {
	for i := range n.SubTopics {
		if n.SubTopics[i].Name == name {
			return &n.SubTopics[i]
		}
	}
	return nil
}

// EnsureSubTopic returns the named sub-topic, appending an empty one when absent.
func (n *Note) EnsureSubTopic(name string, now time.Time) *SubTopic {
	if st := n.SubTopic(name); st != nil {
		return st
	}
	n.SubTopics = append(n.SubTopics, SubTopic{
		Name:      name,
		Questions: []Question{},
		CreatedAt: now,
	})
	return &n.SubTopics[len(n.SubTopics)-1]
}

func (s *SubTopic) HasQuestion(id string) bool {
	for _, q := range s.Questions {
		if q.Id == id {
			return true
		}
	}
	return false
}

// QuestionCount counts questions across all sub-topics.
func (n *Note) QuestionCount() int {
	total := 0
	for _, st := range n.SubTopics {
		total += len(st.Questions)
	}
	return total
}

// Clone returns a deep copy so callers can mutate freely.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	out := *n
	out.SubTopics = make([]SubTopic, len(n.SubTopics))
	for i, st := range n.SubTopics {
		out.SubTopics[i] = SubTopic{
			Name:      st.Name,
			Questions: append([]Question{}, st.Questions...),
			CreatedAt: st.CreatedAt,
		}
	}
	return &out
}
