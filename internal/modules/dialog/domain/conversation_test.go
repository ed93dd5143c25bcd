package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/modules/dialog/domain"
	apperrors "landing/internal/platform/errors"
)

func fixtureScript() domain.Script {
	return domain.Script{
		Greeting: "hello",
		Options: []domain.Node{
			{ID: "a", Prompt: "A?", Response: "A!", Children: []domain.Node{
				{ID: "a-1", Prompt: "A1?", Response: "A1!"},
				{ID: "a-2", Prompt: "A2?", Response: "A2!", Children: []domain.Node{
					{ID: "a-2-1", Prompt: "deep?", Response: "deep!"},
				}},
			}},
			{ID: "b", Prompt: "B?", Response: "line one\nline two"},
		},
	}
}

func allNodes(nodes []domain.Node) []domain.Node {
	var out []domain.Node
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, allNodes(n.Children)...)
	}
	return out
}

func TestInitializeSeedsGreetingAndRootMenu(t *testing.T) {
	t.Parallel()
	c := domain.NewConversation(fixtureScript())

	assert.Equal(t, []domain.Turn{{Speaker: domain.SpeakerBot, Text: "hello"}}, c.Transcript())
	assert.Equal(t, fixtureScript().Options, c.Cursor())
}

func TestChooseAppendsUserThenBotForEveryNode(t *testing.T) {
	t.Parallel()
	script := fixtureScript()
	for _, node := range allNodes(script.Options) {
		node := node
		t.Run(node.ID, func(t *testing.T) {
			t.Parallel()
			c := domain.NewConversation(script)
			before := c.Transcript()

			after, _ := c.Choose(node)

			require.Len(t, after, len(before)+2)
			assert.Equal(t, before, after[:len(before)], "existing entries must not change")
			assert.Equal(t, domain.Turn{Speaker: domain.SpeakerUser, Text: node.Prompt}, after[len(before)])
			assert.Equal(t, domain.Turn{Speaker: domain.SpeakerBot, Text: node.Response}, after[len(before)+1])
		})
	}
}

func TestChooseMovesCursorToChildrenOrRootMenu(t *testing.T) {
	t.Parallel()
	script := fixtureScript()
	for _, node := range allNodes(script.Options) {
		c := domain.NewConversation(script)
		_, cursor := c.Choose(node)
		if node.IsLeaf() {
			assert.Equal(t, script.Options, cursor, "leaf %s must reset to root menu", node.ID)
		} else {
			assert.Equal(t, node.Children, cursor, "node %s must offer its children in order", node.ID)
		}
	}
}

func TestTranscriptGrowsMonotonicallyAcrossWalk(t *testing.T) {
	t.Parallel()
	c := domain.NewConversation(fixtureScript())
	prev := c.Transcript()
	for i := 0; i < 10; i++ {
		cursor := c.Cursor()
		_, _ = c.Choose(cursor[i%len(cursor)])
		cur := c.Transcript()
		require.Equal(t, prev, cur[:len(prev)])
		require.Len(t, cur, len(prev)+2)
		prev = cur
	}
}

func TestInitializeDiscardsTranscript(t *testing.T) {
	t.Parallel()
	c := domain.NewConversation(fixtureScript())
	_, _ = c.Choose(c.Cursor()[0])
	_, _ = c.Choose(c.Cursor()[1])

	menu := c.Initialize()

	assert.Len(t, c.Transcript(), 1)
	assert.Equal(t, c.RootMenu(), menu)
}

func TestCursorIsACopy(t *testing.T) {
	t.Parallel()
	c := domain.NewConversation(fixtureScript())
	cursor := c.Cursor()
	cursor[0].Prompt = "mutated"
	assert.Equal(t, "A?", c.Cursor()[0].Prompt)
}

func TestBlocksKeepsOrderAndEmptyLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "", "b"}, domain.Blocks("a\n\nb"))
	assert.Equal(t, []string{"single"}, domain.Blocks("single"))
}

func TestScriptValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*domain.Script)
		ok     bool
	}{
		{name: "valid", mutate: func(*domain.Script) {}, ok: true},
		{name: "missing greeting", mutate: func(s *domain.Script) { s.Greeting = " " }},
		{name: "empty menu", mutate: func(s *domain.Script) { s.Options = nil }},
		{name: "missing id", mutate: func(s *domain.Script) { s.Options[1].ID = "" }},
		{name: "duplicate id", mutate: func(s *domain.Script) { s.Options[1].ID = "a-1" }},
		{name: "missing prompt", mutate: func(s *domain.Script) { s.Options[1].Prompt = "" }},
		{name: "missing response", mutate: func(s *domain.Script) { s.Options[1].Response = "" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := fixtureScript()
			tc.mutate(&s)
			err := s.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}

func TestScriptValidateRejectsRunawayDepth(t *testing.T) {
	t.Parallel()
	node := domain.Node{ID: "leaf", Prompt: "p", Response: "r"}
	for i := 0; i <= domain.MaxDepth; i++ {
		node = domain.Node{ID: "n" + string(rune('a'+i)), Prompt: "p", Response: "r", Children: []domain.Node{node}}
	}
	err := domain.Script{Greeting: "g", Options: []domain.Node{node}}.Validate()
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestScriptCount(t *testing.T) {
	t.Parallel()
	nodes, depth := fixtureScript().Count()
	assert.Equal(t, 5, nodes)
	assert.Equal(t, 3, depth)
}
