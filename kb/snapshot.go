package kb

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/model"
)

// Snapshot is a KnowledgeBase backed by a JSON Lines export, one concept per
// line. Concepts come back in file order, which keeps rebuilds over the same
// snapshot byte-identical.
type Snapshot struct {
	path string
}

// NewSnapshot points at a snapshot file without reading it yet.
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Concepts reads and decodes the whole snapshot. Blank lines are skipped;
// a malformed line aborts the load, since a partially-read snapshot would
// silently change sequence numbering.
func (s *Snapshot) Concepts() ([]*model.Concept, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, helper.NewError("open snapshot", err)
	}
	defer f.Close()

	var concepts []*model.Concept
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		concept := &model.Concept{}
		if err := json.Unmarshal([]byte(text), concept); err != nil {
			return nil, helper.NewError("decode snapshot", fmt.Errorf("line %d: %w", line, err))
		}
		if concept.ID == "" {
			return nil, helper.NewError("decode snapshot", fmt.Errorf("line %d: concept without id", line))
		}

		concepts = append(concepts, concept)
	}
	if err := scanner.Err(); err != nil {
		return nil, helper.NewError("read snapshot", err)
	}

	return concepts, nil
}
