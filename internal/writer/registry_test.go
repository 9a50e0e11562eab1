package writer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryToolHasLengths(t *testing.T) {
	t.Parallel()

	for _, tool := range Tools {
		def, err := DefinitionFor(tool)
		require.NoError(t, err)
		require.NotEmpty(t, def.Lengths, "tool %q has no length options", tool)
		require.NotEmpty(t, def.Label)

		seen := map[string]bool{}
		for _, l := range def.Lengths {
			require.False(t, seen[l.ID], "duplicate length %q on %q", l.ID, tool)
			seen[l.ID] = true
			require.Positive(t, l.Words)
		}
	}
}

func TestDefaultLengthIsAlwaysMember(t *testing.T) {
	t.Parallel()

	// switching tools resets to DefaultLength; it must belong to the new
	// tool's set for every tool
	for _, tool := range Tools {
		l, err := DefaultLength(tool)
		require.NoError(t, err)
		require.True(t, HasLength(tool, l.ID))
	}
}

func TestUnknownToolIsDefensiveError(t *testing.T) {
	t.Parallel()

	_, err := DefinitionFor(Tool("poem"))
	require.ErrorIs(t, err, ErrUnknownTool)

	_, err = LengthsFor(Tool(""))
	require.ErrorIs(t, err, ErrUnknownTool)

	require.False(t, HasLength(Tool("poem"), "short"))
}

func TestResolveTool(t *testing.T) {
	t.Parallel()

	cases := map[string]Tool{
		"essay":       ToolEssay,
		" Report ":    ToolReport,
		"SOCIAL POST": ToolSocialPost,
		"social-post": ToolSocialPost,
		"explainer":   ToolExplainer,
	}
	for in, want := range cases {
		got, err := ResolveTool(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got)
	}
}

func TestResolveToolSuggestsNearest(t *testing.T) {
	t.Parallel()

	_, err := ResolveTool("esay")
	require.Error(t, err)
	require.Contains(t, err.Error(), `did you mean "essay"`)
}

func TestResolveTone(t *testing.T) {
	t.Parallel()

	tone, err := ResolveTone("Academic")
	require.NoError(t, err)
	require.Equal(t, ToneAcademic, tone)

	_, err = ResolveTone("sarcastic")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnknownTool))
}
