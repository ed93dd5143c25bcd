package domain

// Conversation walks a Script. It owns the transcript of one open widget
// session and the currently offered options.
type Conversation struct {
	script     Script
	transcript []Turn
	cursor     []Node
}

func NewConversation(script Script) *Conversation {
	c := &Conversation{script: script}
	c.Initialize()
	return c
}

// Initialize discards the transcript, seeds it with the greeting and
// returns the root menu.
func (c *Conversation) Initialize() []Node {
	c.transcript = []Turn{{Speaker: SpeakerBot, Text: c.script.Greeting}}
	c.cursor = c.script.Options
	return c.Cursor()
}

// Choose records the user's pick and the bot's answer, then offers the
// node's children, or the root menu when node is a leaf.
func (c *Conversation) Choose(node Node) ([]Turn, []Node) {
	c.transcript = append(c.transcript,
		Turn{Speaker: SpeakerUser, Text: node.Prompt},
		Turn{Speaker: SpeakerBot, Text: node.Response},
	)
	if node.IsLeaf() {
		c.cursor = c.script.Options
	} else {
		c.cursor = node.Children
	}
	return c.Transcript(), c.Cursor()
}

func (c *Conversation) Transcript() []Turn {
	out := make([]Turn, len(c.transcript))
	copy(out, c.transcript)
	return out
}

func (c *Conversation) Cursor() []Node {
	out := make([]Node, len(c.cursor))
	copy(out, c.cursor)
	return out
}

func (c *Conversation) RootMenu() []Node {
	out := make([]Node, len(c.script.Options))
	copy(out, c.script.Options)
	return out
}
