package messages

import "ShopBot/internal/core/ports"

// ParseModeHTML is the default parse mode of every message the bot sends.
const ParseModeHTML = "HTML"

// Builder helps construct complex SendMessageParams.
type Builder struct {
	params ports.SendMessageParams
}

// NewBuilder creates a new message builder.
func NewBuilder(chatID int64) *Builder {
	return &Builder{
		params: ports.SendMessageParams{
			ChatID:    chatID,
			ParseMode: ParseModeHTML,
		},
	}
}

// WithText sets the message text.
func (b *Builder) WithText(text string) *Builder {
	b.params.Text = text
	return b
}

// WithParseMode overrides the default parse mode.
func (b *Builder) WithParseMode(mode string) *Builder {
	b.params.ParseMode = mode
	return b
}

// WithRemoveKeyboard adds a flag to remove the reply keyboard.
func (b *Builder) WithRemoveKeyboard() *Builder {
	b.params.RemoveKeyboard = true
	b.params.ReplyMarkup = nil
	return b
}

// WithMarkup attaches a prebuilt keyboard. A nil markup leaves the current keyboard alone.
func (b *Builder) WithMarkup(markup *ports.ReplyMarkup) *Builder {
	if markup == nil {
		return b
	}
	b.params.RemoveKeyboard = false
	b.params.ReplyMarkup = markup
	return b
}

// WithInlineButtons adds a set of inline buttons.
func (b *Builder) WithInlineButtons(buttons [][]ports.Button) *Builder {
	return b.WithMarkup(&ports.ReplyMarkup{
		IsInline: true,
		Buttons:  buttons,
	})
}

// WithReplyButtons creates a grid of reply buttons.
// It takes a flat list of button texts and arranges them into rows.
func (b *Builder) WithReplyButtons(buttonTexts []string, columns int) *Builder {
	return b.WithMarkup(&ports.ReplyMarkup{
		Buttons: Grid(buttonTexts, columns),
	})
}

// Build returns the final SendMessageParams struct.
func (b *Builder) Build() ports.SendMessageParams {
	return b.params
}

// Grid lays texts out in rows of at most columns buttons.
func Grid(texts []string, columns int) [][]ports.Button {
	if columns < 1 {
		columns = 1
	}
	var rows [][]ports.Button
	var row []ports.Button
	for i, text := range texts {
		row = append(row, ports.Button{Text: text})
		if (i+1)%columns == 0 || i == len(texts)-1 {
			rows = append(rows, row)
			row = nil
		}
	}
	return rows
}
