package translation

import (
	"fmt"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DetectLanguage returns the English name of the dominant language of text,
// or "" when detection is not confident enough to be worth naming.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	tag, err := language.Parse(info.Lang.Iso6391())
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}

// Instruction builds the natural-language instruction sent alongside the
// document text. When no source language is configured, the document is
// sampled with whatlanggo to name it explicitly; an unconfident detection
// leaves the source unnamed and the model infers it.
func (c *Config) Instruction(text string) string {
	target := display.English.Tags().Name(c.TargetLang)

	source := ""
	if c.SourceLang != "" {
		if tag, err := language.Parse(c.SourceLang); err == nil {
			source = display.English.Tags().Name(tag)
		}
	} else {
		source = DetectLanguage(text)
	}

	from := ""
	if source != "" && source != target {
		from = fmt.Sprintf(" from %s", source)
	}

	return fmt.Sprintf("Translate the following Markdown document%s into %s. "+
		"Preserve all Markdown structure exactly: headings, lists, tables, links, "+
		"code fences and inline formatting. Do not translate code inside code fences "+
		"or inline code spans. Respond with only the translated document, with no "+
		"commentary and no wrapping delimiters.", from, target)
}
