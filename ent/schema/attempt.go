package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Attempt records one completed career quiz.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			Comment("UUIDv4 identifying the attempt"),
		field.String("answers").
			MaxLen(16).
			Comment("One character per question: A-D, - unanswered, ? unrecognized"),
		field.String("tie_break").
			Comment("Tie-break policy used for scoring: first or last"),
		field.String("normalization").
			Comment("Percentage normalization: absorb or largest-remainder"),
		field.String("career_path").
			Comment("Recommended path, empty when nothing was answered"),
		field.Text("result").
			Comment("Scored result as JSON"),
	}
}
