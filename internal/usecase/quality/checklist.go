package quality

import "regexp"

// section is one weighted entry of the completeness checklist. A section
// counts as present when any of its patterns matches the lowercased text.
type section struct {
	name     string
	weight   float64
	patterns []*regexp.Regexp
}

// checklist is the fixed resume completeness checklist. Weights sum to 10.
var checklist = []section{
	{
		name:   "Contact Information",
		weight: 2.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),   // email address
			regexp.MustCompile(`\+?\d[\d\s\-().]{7,}\d`), // phone number
		},
	},
	{
		name:   "Skills Section",
		weight: 2.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bskills?\b`),
			regexp.MustCompile(`\btechnical skills\b`),
			regexp.MustCompile(`\bcore competencies\b`),
			regexp.MustCompile(`\bproficiencies\b`),
		},
	},
	{
		name:   "Education",
		weight: 2.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\beducation\b`),
			regexp.MustCompile(`\bdegree\b`),
			regexp.MustCompile(`\bbachelor\b`),
			regexp.MustCompile(`\bmaster\b`),
			regexp.MustCompile(`\bphd\b`),
			regexp.MustCompile(`\buniversity\b`),
			regexp.MustCompile(`\bcollege\b`),
		},
	},
	{
		name:   "Work Experience",
		weight: 2.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bexperience\b`),
			regexp.MustCompile(`\bwork history\b`),
			regexp.MustCompile(`\bemployment\b`),
			regexp.MustCompile(`\bjob\b`),
			regexp.MustCompile(`\bintern\b`),
			regexp.MustCompile(`\bposition\b`),
		},
	},
	{
		name:   "Summary / Objective",
		weight: 1.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bsummary\b`),
			regexp.MustCompile(`\bobjective\b`),
			regexp.MustCompile(`\bprofile\b`),
			regexp.MustCompile(`\babout me\b`),
		},
	},
	{
		name:   "Projects / Certifications",
		weight: 1.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bproject\b`),
			regexp.MustCompile(`\bcertif`),
			regexp.MustCompile(`\bachievement\b`),
			regexp.MustCompile(`\baward\b`),
		},
	},
}
