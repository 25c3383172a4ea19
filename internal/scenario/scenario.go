// Package scenario replays scripted MessagePriorityQueue operations loaded from YAML or JSON files.
package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/g-m-twostay/go-lists/Lists"
	"github.com/g-m-twostay/go-lists/Queues"
	"github.com/sugawarayuuta/sonnet"
	"gopkg.in/yaml.v3"
)

// Step is one queue operation. Message and Priority are only read by enqueue and size.
type Step struct {
	Op       string `json:"op" yaml:"op"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	Priority string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Scenario is a queue size limit plus the steps to run against a fresh queue.
// A missing MaxCapacity means Lists.Unbounded; an explicit 0 gives levels that refuse every message.
type Scenario struct {
	MaxCapacity *int   `json:"maxCapacity,omitempty" yaml:"maxCapacity,omitempty"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

// Load reads a scenario, choosing the decoder by file extension: .yaml/.yml or .json.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext and validates it.
func Parse(data []byte, ext string) (*Scenario, error) {
	var s Scenario
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".json":
		if err := sonnet.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known op and, where needed, a known priority.
func (s *Scenario) Validate() error {
	if s.MaxCapacity != nil && *s.MaxCapacity < 0 {
		return fmt.Errorf("maxCapacity %d is negative", *s.MaxCapacity)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "enqueue":
			if _, err := Queues.ParsePriority(st.Priority); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case "size":
			if st.Priority == "" {
				continue
			}
			if _, err := Queues.ParsePriority(st.Priority); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case "dequeue", "peek", "dump":
		default:
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// Run replays the steps on a new queue and writes one line per step to w, or the queue dump for "dump".
// Failed operations are written as "<op>: <error>" and do not stop the run.
func Run(s *Scenario, w io.Writer) error {
	maxCap := Lists.Unbounded
	if s.MaxCapacity != nil {
		maxCap = *s.MaxCapacity
	}
	q := Queues.NewMPQ(maxCap)
	defer q.Destroy()
	for _, st := range s.Steps {
		var line string
		switch st.Op {
		case "enqueue":
			p, _ := Queues.ParsePriority(st.Priority)
			if err := q.Enqueue(st.Message, p); err != nil {
				line = st.Op + ": " + err.Error()
			} else {
				line = "enqueue " + p.String() + " " + strconv.Quote(st.Message)
			}
		case "dequeue", "peek":
			f := q.Dequeue
			if st.Op == "peek" {
				f = q.Peek
			}
			if v, err := f(); err != nil {
				line = st.Op + ": " + err.Error()
			} else {
				line = st.Op + " " + strconv.Quote(v)
			}
		case "size":
			if st.Priority == "" {
				line = "size " + strconv.Itoa(q.TotalSize())
			} else {
				p, _ := Queues.ParsePriority(st.Priority)
				line = "size " + p.String() + " " + strconv.Itoa(q.SizeForPriority(p))
			}
		case "dump":
			if _, err := io.WriteString(w, q.String()); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
