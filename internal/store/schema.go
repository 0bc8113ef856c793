package store

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/aether/ent/schema"
)

const (
	attemptsTableName  = "attempts"
	llmEventsTableName = "llm_request_events"
	snapshotsTableName = "snapshots"
)

var (
	attemptsTable  = tableFor(attemptsTableName, "Attempt", entschema.Attempt{})
	llmEventsTable = tableFor(llmEventsTableName, "LLMRequestEvent", entschema.LLMRequestEvent{})
	snapshotsTable = tableFor(snapshotsTableName, "Snapshot", entschema.Snapshot{})

	tables = []*schema.Table{attemptsTable, llmEventsTable, snapshotsTable}
)

// tableFor builds the migration table of an ent schema: an auto-increment
// id, then mixin fields, then the schema's own fields. Indexes are named
// <type>_<fields> in lower case, as ent's generator names them.
func tableFor(name, typ string, s ent.Interface) *schema.Table {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	t := schema.NewTable(name)
	t.AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			panic(fmt.Sprintf("store: %s.%s: %v", typ, d.Name, d.Err))
		}
		t.AddColumn(&schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Unique:   d.Unique,
			Nullable: d.Optional,
		})
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		for _, col := range d.Fields {
			if !t.HasColumn(col) {
				panic(fmt.Sprintf("store: %s index on unknown field %q", typ, col))
			}
		}
		key := d.StorageKey
		if key == "" {
			key = strings.ToLower(typ + "_" + strings.Join(d.Fields, "_"))
		}
		t.AddIndex(key, d.Unique, d.Fields)
	}
	return t
}
