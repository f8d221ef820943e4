package multipart

import (
	json "github.com/json-iterator/go"
)

type partSummary struct {
	Name     string  `json:"name"`
	Filename *string `json:"filename,omitempty"`
	Type     string  `json:"type"`
	Charset  string  `json:"charset"`
	Size     int     `json:"size"`
	Value    *string `json:"value,omitempty"`
}

type formSummary struct {
	Boundary string        `json:"boundary"`
	Parts    []partSummary `json:"parts"`
}

// MarshalJSON summarizes the form. Field values are included as is, while files are
// described by their filename and size only.
func (f *Form) MarshalJSON() ([]byte, error) {
	summary := formSummary{
		Boundary: string(f.Boundary),
		Parts:    make([]partSummary, 0, len(f.parts)),
	}

	for _, part := range f.parts {
		entry := partSummary{
			Name:    part.Name(),
			Type:    part.ContentType(),
			Charset: part.Charset(),
			Size:    len(part.Body()),
		}

		switch p := part.(type) {
		case *Field:
			value := p.Value()
			entry.Value = &value
		case *File:
			filename := p.Filename()
			entry.Filename = &filename
		}

		summary.Parts = append(summary.Parts, entry)
	}

	return json.Marshal(summary)
}
