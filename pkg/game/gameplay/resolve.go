package gameplay

import (
	"fmt"
	"strconv"
	"strings"

	"dungeon/pkg/engine/world"
)

// resolveItems finds the items among candidates that a phrase names. A match
// on the whole phrase wins. A trailing number picks one of the matches for
// the rest of the phrase, so "coin 2" is the second coin. Otherwise every
// item matching any single word of the phrase is returned, in candidate
// order.
func resolveItems(g *world.Graph, candidates []world.ItemID, phrase string) []*world.Item {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil
	}

	items := make([]*world.Item, 0, len(candidates))
	for _, id := range candidates {
		if item, ok := g.Item(id); ok {
			items = append(items, item)
		}
	}

	var exact []*world.Item
	for _, item := range items {
		if item.Matches(phrase) {
			exact = append(exact, item)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	tokens := strings.Fields(phrase)
	if n, err := strconv.Atoi(tokens[len(tokens)-1]); err == nil && len(tokens) > 1 {
		matches := resolveItems(g, candidates, strings.Join(tokens[:len(tokens)-1], " "))
		if n < 1 || n > len(matches) {
			return nil
		}
		return matches[n-1 : n]
	}

	var partial []*world.Item
	for _, item := range items {
		if matchesAnyWord(item, tokens) {
			partial = append(partial, item)
		}
	}
	return partial
}

func matchesAnyWord(item *world.Item, tokens []string) bool {
	nameWords := strings.Fields(strings.ToLower(item.Name))
	for _, tok := range tokens {
		if item.Matches(tok) {
			return true
		}
		for _, w := range nameWords {
			if w == tok {
				return true
			}
		}
	}
	return false
}

// itemNames lists items for a disambiguation prompt. Items sharing a name
// are numbered in order, which resolveItems accepts back.
func itemNames(items []*world.Item) string {
	count := make(map[string]int, len(items))
	for _, item := range items {
		count[strings.ToLower(item.Name)]++
	}

	seen := make(map[string]int, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		name, key := item.Name, strings.ToLower(item.Name)
		if count[key] > 1 {
			seen[key]++
			name = fmt.Sprintf("%s %d", name, seen[key])
		}
		names = append(names, "ITEM{"+name+"}")
	}
	return strings.Join(names, ", ")
}
