package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTable        = errors.New("rule table is empty")
	ErrMissingCatchAll   = errors.New("rule table must end with a catch-all rule")
	ErrMisplacedCatchAll = errors.New("catch-all rule must be the last rule")
	ErrEmptyResponse     = errors.New("rule response is empty")
	ErrEmptyTrigger      = errors.New("rule trigger is empty")
)

// Rule pairs a set of trigger tokens with a fixed reply. A rule without
// triggers is the catch-all.
type Rule struct {
	Name     string   `yaml:"name" json:"name"`
	Triggers []string `yaml:"triggers" json:"triggers"`
	Response string   `yaml:"response" json:"response"`
}

// CatchAll reports whether the rule matches every utterance.
func (r Rule) CatchAll() bool {
	return len(r.Triggers) == 0
}

func (r Rule) matches(normalized string) bool {
	if r.CatchAll() {
		return true
	}
	for _, token := range r.Triggers {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

// RuleTable is evaluated in order; the first matching rule wins.
type RuleTable []Rule

// Engine maps an utterance to a reply. It is immutable after New and safe for
// concurrent use.
type Engine struct {
	rules RuleTable
}

// New validates the table and returns an engine over a private copy of it.
// Trigger tokens are lower-cased once here.
func New(table RuleTable) (*Engine, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	rules := make(RuleTable, len(table))
	for i, rule := range table {
		if strings.TrimSpace(rule.Response) == "" {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Name, ErrEmptyResponse)
		}
		if rule.CatchAll() && i != len(table)-1 {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Name, ErrMisplacedCatchAll)
		}

		triggers := make([]string, 0, len(rule.Triggers))
		for _, token := range rule.Triggers {
			if token == "" {
				return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Name, ErrEmptyTrigger)
			}
			triggers = append(triggers, strings.ToLower(token))
		}

		rules[i] = Rule{Name: rule.Name, Triggers: triggers, Response: rule.Response}
	}

	if !rules[len(rules)-1].CatchAll() {
		return nil, ErrMissingCatchAll
	}

	return &Engine{rules: rules}, nil
}

// Default returns an engine over the built-in foundation rule set.
func Default() *Engine {
	e, err := New(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("engine: default rules invalid: %v", err))
	}
	return e
}

// Respond returns the reply of the first rule matching the utterance.
func (e *Engine) Respond(utterance string) string {
	_, rule := e.Match(utterance)
	return rule.Response
}

// Match returns the index and rule that answer the utterance. The catch-all
// guarantees a match.
func (e *Engine) Match(utterance string) (int, Rule) {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	for i, rule := range e.rules {
		if rule.matches(normalized) {
			return i, rule
		}
	}
	// unreachable: New enforces a terminal catch-all
	last := len(e.rules) - 1
	return last, e.rules[last]
}

// Rules returns a copy of the rule table.
func (e *Engine) Rules() RuleTable {
	out := make(RuleTable, len(e.rules))
	for i, rule := range e.rules {
		out[i] = Rule{
			Name:     rule.Name,
			Triggers: append([]string(nil), rule.Triggers...),
			Response: rule.Response,
		}
	}
	return out
}
