// Package responder selects canned chat replies. Rules are evaluated in
// a fixed priority order against the lowercased user text, first match
// wins; an unmatched message gets the topic menu.
package responder

import (
	"strings"

	"github.com/samber/lo"
)

// Context is what the responder knows about the conversation so far.
type Context struct {
	// PriorUserMessages is the number of user messages sent before the
	// one being answered.
	PriorUserMessages int
}

// Response is a selected canned reply.
type Response struct {
	Topic string
	Text  string
}

// rule maps a keyword group to a reply template. Templates may vary with
// the conversation context.
type rule struct {
	topic    string
	keywords []string
	respond  func(ctx Context) string
}

// Responder holds the ordered rule table.
type Responder struct {
	rules []rule
}

// New returns a Responder with the default rule table.
func New() *Responder {
	return &Responder{
		rules: defaultRules(),
	}
}

// Reply selects the reply for the user text. The earliest rule with any
// keyword contained in the lowercased text wins.
func (r *Responder) Reply(text string, ctx Context) Response {
	input := strings.ToLower(text)

	for _, rule := range r.rules {
		matched := lo.SomeBy(rule.keywords, func(keyword string) bool {
			return strings.Contains(input, keyword)
		})
		if matched {
			return Response{
				Topic: rule.topic,
				Text:  rule.respond(ctx),
			}
		}
	}

	return Response{
		Topic: menuTopic,
		Text:  menuTemplate,
	}
}

// Topics returns the rule topics in priority order.
func (r *Responder) Topics() []string {
	return lo.Map(r.rules, func(ru rule, _ int) string {
		return ru.topic
	})
}
