package dom

import (
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Helpers for boundary points and tree order. Offsets into character data
// count runes, offsets into other nodes count children.

func nodeLength(n *html.Node) int {
	if IsCharacterData(n) {
		return utf8.RuneCountInString(n.Data)
	}
	l := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l++
	}
	return l
}

func indexOf(n *html.Node) int {
	i := 0
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		i++
	}
	return i
}

func childAt(n *html.Node, i int) *html.Node {
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

func rootOf(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// isInclusiveAncestor is true if a is b or an ancestor of b.
func isInclusiveAncestor(a, b *html.Node) bool {
	for ; b != nil; b = b.Parent {
		if a == b {
			return true
		}
	}
	return false
}

func pathFromRoot(n *html.Node) []*html.Node {
	var path []*html.Node
	for ; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// precedes is true if a comes before b in tree order. a and b have to
// share a root.
func precedes(a, b *html.Node) bool {
	if a == b {
		return false
	}
	pa, pb := pathFromRoot(a), pathFromRoot(b)
	i := 0
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	if i == len(pa) { // a is an ancestor of b
		return true
	}
	if i == len(pb) || i == 0 { // b is an ancestor of a, or different trees
		return false
	}
	return indexOf(pa[i]) < indexOf(pb[i])
}

// comparePoints returns -1 if (na,oa) is before (nb,ob), 0 if both are
// equal and +1 if (na,oa) is after (nb,ob).
func comparePoints(na *html.Node, oa int, nb *html.Node, ob int) int {
	if na == nb {
		switch {
		case oa == ob:
			return 0
		case oa < ob:
			return -1
		}
		return 1
	}
	if precedes(nb, na) {
		return -comparePoints(nb, ob, na, oa)
	}
	if isInclusiveAncestor(na, nb) {
		child := nb
		for child.Parent != na {
			child = child.Parent
		}
		if indexOf(child) < oa {
			return 1
		}
	}
	return -1
}

// runeSlice returns the runes [from,to) of s, clamped to the length of s.
func runeSlice(s string, from, to int) string {
	r := []rune(s)
	if to > len(r) {
		to = len(r)
	}
	if from > to {
		from = to
	}
	return string(r[from:to])
}
