package resume

import "fmt"

// MaxTextSize is the maximum resume text size in bytes.
const MaxTextSize = 1 << 20 // 1MB

// Resume is a candidate resume (immutable value object).
// Text is the raw extracted text; normalization happens per analysis call,
// never here.
type Resume struct {
	name string
	text string
}

// New validates and creates a Resume.
// Name: non-empty, max 256 chars. Text may be empty (scores degrade to zero),
// but not oversized.
func New(name, text string) (Resume, error) {
	if name == "" {
		return Resume{}, fmt.Errorf("candidate name is required")
	}
	if len(name) > 256 {
		return Resume{}, fmt.Errorf("candidate name too long (max 256)")
	}
	if len(text) > MaxTextSize {
		return Resume{}, fmt.Errorf("resume text too large (max %d bytes)", MaxTextSize)
	}
	return Resume{name: name, text: text}, nil
}

// Name returns the candidate identifier.
func (r *Resume) Name() string { return r.name }

// Text returns the raw resume text.
func (r *Resume) Text() string { return r.text }
