// Package compat holds the static table of which clothing categories pair
// well with which others.
package compat

import (
	"sort"

	"github.com/agenthands/wardrobe/internal/core/common"
)

// Graph maps a category name to the ordered list of categories that are
// stylistically compatible with it. The relation is not symmetric.
// A Graph is never modified after construction and is safe for concurrent use.
type Graph struct {
	edges map[string][]string
	keys  []string
}

var defaultTable = map[string][]string{
	"BAGS":              {"DRESSES/JUMPSUITS", "BLAZERS", "COATS", "TOPS", "SHOES"},
	"BLAZERS":           {"SHIRTS", "TOPS", "TROUSERS", "JEANS", "SKIRTS", "BAGS"},
	"COATS":             {"KNITWEAR", "TROUSERS", "JEANS", "BAGS", "SHOES"},
	"DRESSES/JUMPSUITS": {"BLAZERS", "JACKETS", "BAGS", "SHOES", "ACCESSORIES"},
	"JACKETS":           {"TOPS", "SHIRTS", "JEANS", "TROUSERS", "DRESSES/JUMPSUITS"},
	"JEANS":             {"SHIRTS", "TOPS", "KNITWEAR", "JACKETS", "SHOES"},
	"KNITWEAR":          {"SHIRTS", "TROUSERS", "JEANS", "SKIRTS", "COATS"},
	"SHIRTS":            {"TROUSERS", "JEANS", "SKIRTS", "BLAZERS", "KNITWEAR"},
	"SHOES":             {"TROUSERS", "JEANS", "DRESSES/JUMPSUITS", "SKIRTS", "BAGS"},
	"SKIRTS":            {"TOPS", "SHIRTS", "KNITWEAR", "BLAZERS", "SHOES"},
	"TOPS":              {"JEANS", "TROUSERS", "SKIRTS", "JACKETS", "ACCESSORIES"},
	"TROUSERS":          {"SHIRTS", "TOPS", "KNITWEAR", "BLAZERS", "SHOES"},
	"ACCESSORIES":       {"DRESSES/JUMPSUITS", "TOPS", "SHIRTS", "COATS"},
}

var defaultGraph = New(defaultTable)

// Default returns the built-in compatibility table.
func Default() *Graph {
	return defaultGraph
}

// New builds a Graph from table. Keys are normalized; the table is copied.
func New(table map[string][]string) *Graph {
	g := &Graph{
		edges: make(map[string][]string, len(table)),
	}
	for k, vs := range table {
		key := common.Normalize(k)
		g.edges[key] = append([]string(nil), vs...)
		g.keys = append(g.keys, key)
	}
	sort.Strings(g.keys)
	return g
}

// Compatible returns the categories declared compatible with category, in
// declared order. Unknown categories get every category that appears as a
// value anywhere in the table, minus the category itself.
func (g *Graph) Compatible(category string) []string {
	key := common.Normalize(category)
	if vs, ok := g.edges[key]; ok {
		return append([]string(nil), vs...)
	}

	var union []string
	for _, k := range g.keys {
		for _, v := range g.edges[k] {
			if common.Normalize(v) == key {
				continue
			}
			union = append(union, v)
		}
	}
	return common.Dedupe(union)
}

// Categories lists the declared keys in sorted order.
func (g *Graph) Categories() []string {
	return append([]string(nil), g.keys...)
}
