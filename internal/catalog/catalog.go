// Package catalog loads the static question file the placement test is
// seeded from. Entries have the shape
// {id, text, options: [{id, text, isTrue}]}.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gmorandi/parlaquiz/internal/model"
)

type optionEntry struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	IsTrue bool   `json:"isTrue"`
}

type questionEntry struct {
	ID      int           `json:"id"`
	Text    string        `json:"text"`
	Options []optionEntry `json:"options"`
}

// Load parses the question file into catalog models. Questions must use
// consecutive zero-based ids, since the quiz driver treats the progress
// index as a question id.
func Load(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file %s: %w", path, err)
	}

	var entries []questionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse questions file %s: %w", path, err)
	}

	questions := make([]model.Question, 0, len(entries))
	for i, e := range entries {
		if e.ID != i {
			return nil, fmt.Errorf("question at position %d has id %d, want consecutive zero-based ids", i, e.ID)
		}
		q := model.Question{ID: e.ID, Text: e.Text}
		for _, o := range e.Options {
			q.Options = append(q.Options, model.Option{
				ID:         o.ID,
				QuestionID: e.ID,
				Text:       o.Text,
				IsCorrect:  o.IsTrue,
			})
		}
		questions = append(questions, q)
	}
	return questions, nil
}
