// Package prompts builds the prompt text for each assistant task.
//
// Every prompt that produces document content asks for Markdown limited to
// what the converter understands: headings, "-"/"*" bullets, numbered lists
// and **bold**.
package prompts

import (
	"fmt"
	"strings"
)

// Task names an assistant action.
type Task string

const (
	TaskAnalyzeTone Task = "tone"
	TaskAdapt       Task = "adapt"
	TaskRewrite     Task = "rewrite"
	TaskPredict     Task = "predict"
	TaskSummarize   Task = "summarize"
	TaskGenerate    Task = "generate"
	TaskAnswer      Task = "answer"
)

// Tasks lists every task in menu order.
func Tasks() []Task {
	return []Task{TaskAnalyzeTone, TaskAdapt, TaskRewrite, TaskPredict, TaskSummarize, TaskGenerate, TaskAnswer}
}

// Action describes what the task was doing, for failure messages.
func (t Task) Action() string {
	switch t {
	case TaskAnalyzeTone:
		return "analyzing the text"
	case TaskAdapt:
		return "adapting the text"
	case TaskRewrite:
		return "rewriting the text"
	case TaskPredict:
		return "generating predictions"
	case TaskSummarize:
		return "summarizing the text"
	case TaskGenerate:
		return "generating the document"
	case TaskAnswer:
		return "answering the questions"
	default:
		return "processing the text"
	}
}

const markdownRules = `Formatting:
1. Answer in standard Markdown.
2. Write every list item on its own line starting with "- " or "* ", or "1. " for ordered steps.
3. Mark emphasis with **bold**. Use "#" headings only for section titles.
4. Return only the result. No introduction, no closing remarks.`

// AnalyzeTone asks for tone improvements toward tone for audience.
func AnalyzeTone(text, tone, audience string) string {
	a := phrase(Audiences, audience)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Review the text below and suggest how to make it more %s in tone for a %s audience.\n\n", phrase(Tones, tone), a)
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)
	fmt.Fprintf(&sb, "Give concrete suggestions that keep the original meaning and suit a %s audience.\n\n", a)
	sb.WriteString(markdownRules)
	return sb.String()
}

// AdaptForAudience asks for text rewritten for audience.
func AdaptForAudience(text, audience string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Adapt the text below for a %s audience.\n\n", phrase(Audiences, audience))
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)
	sb.WriteString("Keep the core message. Change wording, detail and structure as the audience needs.\n\n")
	sb.WriteString(markdownRules)
	return sb.String()
}

// Rewrite asks for a paraphrase in style for audience.
func Rewrite(text, style, audience string) string {
	a := phrase(Audiences, audience)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rewrite the text below in a %s style for a %s audience.\n\n", phrase(RewritingStyles, style), a)
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)
	fmt.Fprintf(&sb, "Keep the meaning. Change the wording and structure to suit a %s audience. Points listed after a colon become a Markdown list.\n\n", a)
	sb.WriteString(markdownRules)
	return sb.String()
}

// PredictNext asks for a short continuation. The result is plain prose.
func PredictNext(text string) string {
	var sb strings.Builder
	sb.WriteString("Continue the text below naturally.\n\n")
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)
	sb.WriteString("Write about 30 to 50 words that could come next. Return only the continuation.")
	return sb.String()
}

// Summarize asks for a summary in style for audience.
func Summarize(text, style, audience string) string {
	a := phrase(Audiences, audience)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the text below in a %s style for a %s audience.\n\n", phrase(RewritingStyles, style), a)
	fmt.Fprintf(&sb, "Text:\n%s\n\n", text)
	sb.WriteString("Capture the key points and the main message. Several points become a Markdown list.\n\n")
	sb.WriteString(markdownRules)
	return sb.String()
}

// LengthInstruction turns a length key into an instruction sentence.
// Unknown keys are passed through as the desired length.
func LengthInstruction(length string) string {
	switch length {
	case "one_sentence":
		return "Write exactly one concise sentence."
	case "short":
		return "Write one or two short paragraphs."
	case "medium":
		return "Write three to five paragraphs of medium length."
	case "long":
		return "Write as many paragraphs as the topic needs."
	case "essay":
		return "Write a detailed essay with a clear structure and explanations."
	case "research_paper":
		return "Write an in-depth, structured research paper with detailed information and examples."
	default:
		return fmt.Sprintf("The desired length is %s.", length)
	}
}

// GenerateDocument asks for a new document from a template and the user's
// instructions.
func GenerateDocument(template, instructions, style, length, audience string) string {
	a := phrase(Audiences, audience)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %s in a %s style for a %s audience. ", phrase(DocumentTemplates, template), phrase(RewritingStyles, style), a)
	sb.WriteString(LengthInstruction(length))
	fmt.Fprintf(&sb, "\n\nInstructions:\n%s\n\n", instructions)
	fmt.Fprintf(&sb, "Produce the complete document for a %s audience.\n\n", a)
	sb.WriteString(markdownRules)
	return sb.String()
}

// AnswerQuestions asks for each question in text to be followed by its
// answer, keeping the questions' own numbering.
func AnswerQuestions(text string) string {
	var sb strings.Builder
	sb.WriteString("The input below contains one or more questions. Answer each one directly after it.\n\n")
	sb.WriteString(`Output, for every question in input order:
1. The question line as written, keeping any leading number or bullet, without trailing answer blanks such as "____" or ".....".
2. A new line with a concise answer, each answer line indented by 4 spaces.
3. A blank line.

Example input:
1. What is the capital of France? ..........
- How many planets? _____

Example output:
1. What is the capital of France?
    The capital of France is Paris.

- How many planets?
    There are eight planets.

Do not group questions. Do not put answers before questions. Do not add commentary.

`)
	fmt.Fprintf(&sb, "--- Input ---\n%s\n--- End input ---", text)
	return sb.String()
}

// Build dispatches on task. For TaskGenerate, text holds the user's
// instructions.
func Build(task Task, text string, params Params) (string, error) {
	params = params.withDefaults()
	switch task {
	case TaskAnalyzeTone:
		return AnalyzeTone(text, params.Tone, params.Audience), nil
	case TaskAdapt:
		return AdaptForAudience(text, params.Audience), nil
	case TaskRewrite:
		return Rewrite(text, params.Style, params.Audience), nil
	case TaskPredict:
		return PredictNext(text), nil
	case TaskSummarize:
		return Summarize(text, params.Style, params.Audience), nil
	case TaskGenerate:
		return GenerateDocument(params.Template, text, params.Style, params.Length, params.Audience), nil
	case TaskAnswer:
		return AnswerQuestions(text), nil
	default:
		return "", fmt.Errorf("unknown task %q", task)
	}
}

// Params are the optional parameters of a task.
type Params struct {
	Tone     string `json:"tone" yaml:"tone"`
	Audience string `json:"audience" yaml:"audience"`
	Style    string `json:"style" yaml:"style"`
	Template string `json:"template" yaml:"template"`
	Length   string `json:"length" yaml:"length"`
}

func (p Params) withDefaults() Params {
	if p.Tone == "" {
		p.Tone = "professional"
	}
	if p.Audience == "" {
		p.Audience = "general"
	}
	if p.Style == "" {
		p.Style = "concise"
	}
	if p.Template == "" {
		p.Template = "report"
	}
	if p.Length == "" {
		p.Length = "medium"
	}
	return p
}
