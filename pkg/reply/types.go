package reply

import (
	"encoding/json"
	"fmt"
)

// Preview is the structured side artifact attached to an assistant reply.
// Exactly one variant is set; it marshals to the union-shaped JSON contract
// the frontend consumes ({"type": "...", ...}).
type Preview struct {
	Resume    *ResumePreview
	Interview *InterviewPreview
	Jobs      *JobsPreview
}

func (p Preview) Type() string {
	switch {
	case p.Resume != nil:
		return p.Resume.Type
	case p.Interview != nil:
		return p.Interview.Type
	case p.Jobs != nil:
		return p.Jobs.Type
	}
	return ""
}

func (p Preview) MarshalJSON() ([]byte, error) {
	switch {
	case p.Resume != nil:
		return json.Marshal(p.Resume)
	case p.Interview != nil:
		return json.Marshal(p.Interview)
	case p.Jobs != nil:
		return json.Marshal(p.Jobs)
	}
	return nil, fmt.Errorf("reply: preview has no variant set")
}

type ResumePreview struct {
	Type     string    `json:"type"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type InterviewPreview struct {
	Type      string   `json:"type"`
	Questions []string `json:"questions"`
	Tips      []string `json:"tips"`
}

type JobsPreview struct {
	Type    string      `json:"type"`
	Results []JobResult `json:"results"`
}

type JobResult struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Match    int    `json:"match"`
}
