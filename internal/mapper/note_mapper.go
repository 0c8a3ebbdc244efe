package mapper

import (
	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// Postgres

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	stored := n.SubTopics.Data()
	subTopics := make([]entity.SubTopic, len(stored))
	for i, st := range stored {
		questions := make([]entity.Question, len(st.Questions))
		for j, q := range st.Questions {
			questions[j] = entity.Question{
				Id:        q.Id,
				Title:     q.Title,
				Pattern:   q.Pattern,
				Trick:     q.Trick,
				Error:     q.Error,
				Edge:      q.Edge,
				CreatedAt: q.CreatedAt,
			}
		}
		subTopics[i] = entity.SubTopic{
			Name:      st.Name,
			Questions: questions,
			CreatedAt: st.CreatedAt,
		}
	}

	return &entity.Note{
		Id:        n.Id.String(),
		Topic:     n.Topic,
		SubTopics: subTopics,
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) (*model.Note, error) {
	if n == nil {
		return nil, nil
	}

	id := uuid.New()
	if n.Id != "" {
		parsed, err := uuid.Parse(n.Id)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	subTopics := make([]model.NoteSubTopic, len(n.SubTopics))
	for i, st := range n.SubTopics {
		questions := make([]model.NoteQuestion, len(st.Questions))
		for j, q := range st.Questions {
			questions[j] = model.NoteQuestion{
				Id:        q.Id,
				Title:     q.Title,
				Pattern:   q.Pattern,
				Trick:     q.Trick,
				Error:     q.Error,
				Edge:      q.Edge,
				CreatedAt: q.CreatedAt,
			}
		}
		subTopics[i] = model.NoteSubTopic{
			Name:      st.Name,
			Questions: questions,
			CreatedAt: st.CreatedAt,
		}
	}

	return &model.Note{
		Id:        id,
		Topic:     n.Topic,
		SubTopics: datatypes.NewJSONType(subTopics),
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}, nil
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// Mongo

func (m *NoteMapper) DocumentToEntity(d *model.NoteDocument) *entity.Note {
	if d == nil {
		return nil
	}

	subTopics := make([]entity.SubTopic, len(d.SubTopics))
	for i, st := range d.SubTopics {
		questions := make([]entity.Question, len(st.Questions))
		for j, q := range st.Questions {
			questions[j] = entity.Question(q)
		}
		subTopics[i] = entity.SubTopic{
			Name:      st.Name,
			Questions: questions,
			CreatedAt: st.CreatedAt,
		}
	}

	return &entity.Note{
		Id:        d.ID.Hex(),
		Topic:     d.Topic,
		SubTopics: subTopics,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (m *NoteMapper) ToDocument(n *entity.Note) (*model.NoteDocument, error) {
	if n == nil {
		return nil, nil
	}

	var id primitive.ObjectID
	if n.Id != "" {
		parsed, err := primitive.ObjectIDFromHex(n.Id)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &model.NoteDocument{
		ID:        id,
		Topic:     n.Topic,
		SubTopics: m.ToSubTopicDocuments(n.SubTopics),
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}, nil
}

func (m *NoteMapper) ToSubTopicDocuments(subTopics []entity.SubTopic) []model.SubTopicDocument {
	docs := make([]model.SubTopicDocument, len(subTopics))
	for i, st := range subTopics {
		questions := make([]model.QuestionDocument, len(st.Questions))
		for j, q := range st.Questions {
			questions[j] = model.QuestionDocument(q)
		}
		docs[i] = model.SubTopicDocument{
			Name:      st.Name,
			Questions: questions,
			CreatedAt: st.CreatedAt,
		}
	}
	return docs
}

// API

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}

	subTopics := make([]dto.SubTopicResponse, len(n.SubTopics))
	for i, st := range n.SubTopics {
		questions := make([]dto.QuestionResponse, len(st.Questions))
		for j, q := range st.Questions {
			questions[j] = dto.QuestionResponse(q)
		}
		subTopics[i] = dto.SubTopicResponse{
			Name:      st.Name,
			Questions: questions,
			CreatedAt: st.CreatedAt,
		}
	}

	return &dto.NoteResponse{
		Id:        n.Id,
		Topic:     n.Topic,
		SubTopics: subTopics,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = m.ToResponse(n)
	}
	return res
}
