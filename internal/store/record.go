package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/pointplan/internal/project"
)

// Record is the persisted shape of a project:
//
//	{ "items": [{ "id", "componentId", "quantity", "justification" }], "budget": 100 }
type Record struct {
	Items  project.State `json:"items"`
	Budget int           `json:"budget"`
}

// Notice describes persisted or imported data that could not be used.
// It is shown to the user; the caller falls back to a safe state.
type Notice struct {
	Source string
	Reason string
}

func (n *Notice) String() string {
	return fmt.Sprintf("could not read %s: %s", n.Source, n.Reason)
}

// DecodeRecord parses a record. Empty input yields an empty record without a
// notice; malformed input yields an empty record and a notice. A missing or
// non-positive budget falls back to fallbackBudget. Items are normalized.
func DecodeRecord(data []byte, source string, fallbackBudget int) (Record, *Notice) {
	empty := Record{Items: project.State{}, Budget: fallbackBudget}
	if len(data) == 0 {
		return empty, nil
	}

	var raw struct {
		Items  project.State `json:"items"`
		Budget *int          `json:"budget"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, &Notice{Source: source, Reason: err.Error()}
	}

	rec := Record{Items: project.Normalize(raw.Items, nil), Budget: fallbackBudget}
	if raw.Budget != nil && *raw.Budget > 0 {
		rec.Budget = *raw.Budget
	}
	return rec, nil
}

// EncodeRecord writes the record as indented JSON.
func EncodeRecord(w io.Writer, rec Record) error {
	if rec.Items == nil {
		rec.Items = project.State{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// ReadRecordFile opens, parses and closes a record file. Any failure,
// including a missing file, becomes a notice with an empty record.
func ReadRecordFile(path string, fallbackBudget int) (Record, *Notice) {
	f, err := os.Open(path)
	if err != nil {
		return Record{Items: project.State{}, Budget: fallbackBudget}, &Notice{Source: path, Reason: err.Error()}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Record{Items: project.State{}, Budget: fallbackBudget}, &Notice{Source: path, Reason: err.Error()}
	}
	if len(data) == 0 {
		return Record{Items: project.State{}, Budget: fallbackBudget}, &Notice{Source: path, Reason: "file is empty"}
	}
	return DecodeRecord(data, path, fallbackBudget)
}

// WriteRecordFile writes the record to path, replacing any existing file.
func WriteRecordFile(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := EncodeRecord(f, rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
