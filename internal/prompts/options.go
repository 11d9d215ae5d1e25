package prompts

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Option is one selectable value of a prompt parameter.
type Option struct {
	Key   string
	Label string
}

var Tones = []Option{
	{"formal", "Formal"},
	{"casual", "Casual"},
	{"persuasive", "Persuasive"},
	{"academic", "Academic"},
	{"professional", "Professional"},
	{"friendly", "Friendly"},
	{"technical", "Technical"},
}

var Audiences = []Option{
	{"general", "General"},
	{"students", "Students"},
	{"parents", "Parents"},
	{"professionals", "Professionals"},
	{"executives", "Executives"},
	{"technical", "Technical"},
	{"children", "Children"},
}

var RewritingStyles = []Option{
	{"simple", "Simple"},
	{"formal", "Formal"},
	{"creative", "Creative"},
	{"concise", "Concise"},
	{"elaborate", "Elaborate"},
}

var DocumentTemplates = []Option{
	{"business_letter", "Business Letter"},
	{"report", "Report"},
	{"lesson_plan", "Lesson Plan"},
	{"student_feedback", "Student Feedback"},
	{"resume", "Resume"},
	{"cover_letter", "Cover Letter"},
	{"proposal", "Proposal"},
}

var Lengths = []Option{
	{"one_sentence", "One Sentence"},
	{"short", "Short Paragraph (Approx. 1-2)"},
	{"medium", "Medium Paragraphs (Approx. 3-5)"},
	{"long", "Long Form (Multiple Paragraphs)"},
	{"essay", "Essay (Detailed Explanation)"},
	{"research_paper", "Research Paper (In-depth, Structured)"},
}

// Lookup finds key in options.
func Lookup(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Keys returns the keys of options in order.
func Keys(options []Option) []string {
	keys := make([]string, len(options))
	for i, o := range options {
		keys[i] = o.Key
	}
	return keys
}

// phrase renders a key for use inside a sentence: "business_letter" becomes
// "business letter". Unknown keys are used as given.
func phrase(options []Option, key string) string {
	if o, ok := Lookup(options, key); ok {
		return strings.ToLower(o.Label)
	}
	return key
}

func in(options []Option) validation.Rule {
	keys := make([]interface{}, len(options))
	for i, o := range options {
		keys[i] = o.Key
	}
	return validation.In(keys...).Error("must be one of: " + strings.Join(Keys(options), ", "))
}

// Validate checks that every set parameter is a known key.
func (p Params) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Tone, in(Tones)),
		validation.Field(&p.Audience, in(Audiences)),
		validation.Field(&p.Style, in(RewritingStyles)),
		validation.Field(&p.Template, in(DocumentTemplates)),
		validation.Field(&p.Length, in(Lengths)),
	)
}
