// Package ui styles the editor panel from a small CSS subset.
package ui

import (
	"strings"
)

// Rule is one CSS rule: a selector and its declarations as raw strings.
type Rule struct {
	Selector string            // ".panel" or "#editor"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Props merges the declarations of every rule whose selector equals sel, in order.
func (s *Stylesheet) Props(sel string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		if r.Selector != sel {
			continue
		}
		for k, v := range r.Props {
			merged[k] = v
		}
	}
	return merged
}

// ParseCSS parses selectors .class or #id followed by blocks of "key: value;".
// Other selectors are skipped. No combinators, no @rules.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		rule, rest, ok := parseOneRule(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rule)
		content = rest
	}
	return sheet
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

// parseOneRule consumes the next "selector { ... }" block. Blocks with an unsupported
// selector are skipped.
func parseOneRule(s string) (Rule, string, bool) {
	for {
		head, rest, ok := strings.Cut(s, "{")
		if !ok {
			return Rule{}, "", false
		}
		body, after, ok := strings.Cut(rest, "}")
		if !ok {
			return Rule{}, "", false
		}
		sel := strings.TrimSpace(head)
		if len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') {
			return Rule{Selector: sel, Props: parseDeclarations(body)}, after, true
		}
		s = after
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
