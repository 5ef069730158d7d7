package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var telegramPolicy = newTelegramPolicy()

// newTelegramPolicy allows the tags listed at
// https://core.telegram.org/bots/api#html-style
func newTelegramPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").OnElements("code")
	return p
}

// MarkdownToTelegramHTML renders md and strips every tag Telegram rejects.
func MarkdownToTelegramHTML(md []byte) string {
	// The parser keeps state, a fresh one is needed per document
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return string(telegramPolicy.SanitizeBytes(markdown.Render(p.Parse(md), renderer)))
}

var markdownMarks = strings.NewReplacer(`\`, "", "**", "", "__", "", "`", "")

// PlainText drops escapes and the common emphasis marks from md, for
// resending a message Telegram refused to parse.
func PlainText(md string) string {
	return markdownMarks.Replace(md)
}
