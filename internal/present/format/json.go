package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/pkg/models"
)

// Document is the JSON view of a render: input, output and fingerprint.
type Document struct {
	Profile  models.Profile `json:"profile"`
	Markdown string         `json:"markdown"`
	Hash     string         `json:"hash"`
}

// NewDocument renders p and pairs it with its hash.
func NewDocument(p models.Profile) Document {
	return Document{Profile: p, Markdown: render.Markdown(p), Hash: p.Hash()}
}

func WriteJSONDocument(w io.Writer, d Document, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d)
}

func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
