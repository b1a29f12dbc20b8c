// Package jobfile reads and checks files that declare scheduled jobs.
//
// A job file is YAML:
//
//	jobs:
//	  - name: nightly-report
//	    schedule: every day at 9am
//	    timezone: America/New_York
//	  - name: rotate-logs
//	    cron: {minute: "0", hour: "*/6", dayOfMonth: "*", month: "*", dayOfWeek: "*"}
//
// Every job sets exactly one of schedule, a schedule expression as
// understood by package schedule, or cron, the five cron fields spelled out.
package jobfile

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"schedexpr.dev/pkg/schedule"
)

// File is the contents of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is a single scheduled job.
type Job struct {
	Name     string           `yaml:"name" json:"name"`
	Title    string           `yaml:"title,omitempty" json:"title,omitempty"`
	Schedule string           `yaml:"schedule,omitempty" json:"schedule,omitempty"`
	Cron     *schedule.Fields `yaml:"cron,omitempty" json:"cron,omitempty"`
	Timezone string           `yaml:"timezone,omitempty" json:"timezone,omitempty"`

	// Line is where the job is declared. It is 0 for jobs not read from a file.
	Line int `yaml:"-" json:"line,omitempty"`
}

// Load reads the job file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read job file")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return f, nil
}

// Parse decodes a job file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	// Decode once more as a node tree to learn where each job is declared.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if seq := jobsNode(&doc); seq != nil && len(seq.Content) == len(f.Jobs) {
		for i, n := range seq.Content {
			f.Jobs[i].Line = n.Line
		}
	}
	return &f, nil
}

// jobsNode finds the sequence node of the top-level jobs key.
func jobsNode(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "jobs" && root.Content[i+1].Kind == yaml.SequenceNode {
			return root.Content[i+1]
		}
	}
	return nil
}
