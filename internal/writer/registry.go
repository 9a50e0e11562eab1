package writer

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Tool is a generation mode understood by the remote writing service.
type Tool string

const (
	ToolEssay      Tool = "essay"
	ToolReport     Tool = "report"
	ToolArticle    Tool = "article"
	ToolSummary    Tool = "summary"
	ToolExplainer  Tool = "explainer"
	ToolSocialPost Tool = "social_post"
)

// Tone shapes the register of the generated text.
type Tone string

const (
	ToneAcademic     Tone = "academic"
	ToneCasual       Tone = "casual"
	TonePersuasive   Tone = "persuasive"
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
)

// LengthOption is one discrete size bucket a tool accepts.
type LengthOption struct {
	ID    string
	Label string
	Hint  string // human-readable target size
	Words int    // midpoint word target, used by the legacy payload shape
}

// ToolDefinition describes one tool and the length buckets it accepts.
// Definitions are fixed at process start and never mutated.
type ToolDefinition struct {
	Tool        Tool
	Label       string
	Description string
	Lengths     []LengthOption
}

// Tools lists the enumeration in display order.
var Tools = []Tool{ToolEssay, ToolReport, ToolArticle, ToolSummary, ToolExplainer, ToolSocialPost}

// Tones lists the tone enumeration in display order.
var Tones = []Tone{ToneAcademic, ToneCasual, TonePersuasive, ToneProfessional, ToneFriendly}

var prose = []LengthOption{
	{ID: "short", Label: "Short", Hint: "150-300 words", Words: 225},
	{ID: "medium", Label: "Medium", Hint: "400-700 words", Words: 550},
	{ID: "long", Label: "Long", Hint: "800-1200 words", Words: 1000},
}

var definitions = map[Tool]ToolDefinition{
	ToolEssay: {
		Tool:        ToolEssay,
		Label:       "Essay",
		Description: "Structured essay with a thesis, body paragraphs and conclusion",
		Lengths:     prose,
	},
	ToolReport: {
		Tool:        ToolReport,
		Label:       "Report",
		Description: "Formal report with background, findings and recommendations",
		Lengths:     prose,
	},
	ToolArticle: {
		Tool:        ToolArticle,
		Label:       "Article",
		Description: "Online article with a hook and subheadings",
		Lengths:     prose,
	},
	ToolSummary: {
		Tool:        ToolSummary,
		Label:       "Summary",
		Description: "Condensed overview keeping only the important ideas",
		Lengths: []LengthOption{
			{ID: "brief", Label: "Brief", Hint: "up to 150 words", Words: 120},
			{ID: "standard", Label: "Standard", Hint: "150-250 words", Words: 200},
		},
	},
	ToolExplainer: {
		Tool:        ToolExplainer,
		Label:       "Explainer",
		Description: "Step-by-step explanation for a smart beginner",
		Lengths:     prose,
	},
	ToolSocialPost: {
		Tool:        ToolSocialPost,
		Label:       "Social post",
		Description: "Short, engaging post with hook and hashtags",
		Lengths: []LengthOption{
			{ID: "post", Label: "Single post", Hint: "50-150 words", Words: 100},
			{ID: "thread", Label: "Thread", Hint: "multi-part thread", Words: 400},
		},
	},
}

// DefinitionFor returns the fixed definition for a tool.
func DefinitionFor(tool Tool) (ToolDefinition, error) {
	def, ok := definitions[tool]
	if !ok {
		return ToolDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	return def, nil
}

// LengthsFor returns the ordered length buckets a tool accepts.
func LengthsFor(tool Tool) ([]LengthOption, error) {
	def, err := DefinitionFor(tool)
	if err != nil {
		return nil, err
	}
	return def.Lengths, nil
}

// DefaultLength returns the first bucket of a tool. Callers switch to it
// whenever the selected tool changes, so the selected length can never be
// stale relative to the tool.
func DefaultLength(tool Tool) (LengthOption, error) {
	def, err := DefinitionFor(tool)
	if err != nil {
		return LengthOption{}, err
	}
	return def.Lengths[0], nil
}

// HasLength reports whether id names one of the tool's buckets.
func HasLength(tool Tool, id string) bool {
	def, err := DefinitionFor(tool)
	if err != nil {
		return false
	}
	for _, l := range def.Lengths {
		if l.ID == id {
			return true
		}
	}
	return false
}

// LengthByID looks up a bucket on a tool.
func LengthByID(tool Tool, id string) (LengthOption, bool) {
	def, err := DefinitionFor(tool)
	if err != nil {
		return LengthOption{}, false
	}
	for _, l := range def.Lengths {
		if l.ID == id {
			return l, true
		}
	}
	return LengthOption{}, false
}

// ResolveTone maps a user-typed tone onto the enumeration.
func ResolveTone(name string) (Tone, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Tones {
		if string(t) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", name)
}

// ResolveTool maps a user-typed name onto the enumeration. Matching is
// case-insensitive and accepts "social-post"/"social post" spellings; on a
// miss the closest tool by edit distance is offered as a suggestion.
func ResolveTool(name string) (Tool, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	if norm == "" {
		return "", fmt.Errorf("no tool given")
	}
	for _, t := range Tools {
		if string(t) == norm {
			return t, nil
		}
	}
	best, bestDist := Tools[0], levenshtein.ComputeDistance(norm, string(Tools[0]))
	for _, t := range Tools[1:] {
		if d := levenshtein.ComputeDistance(norm, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	return "", fmt.Errorf("unknown tool %q (did you mean %q?)", name, best)
}
