/*
Package domdbg implements helpers to debug a node tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/style"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Tree renders a node tree as indented text, one node per line. Elements
// are annotated with their category and inline style.
//
//     #fragment
//     └── <table> self-contained-block
//         └── <tbody> self-contained-block
//             └── <tr> self-contained-block
//                 └── <td> format-block
//                     └── "x"
//
func Tree(root *html.Node) string {
	if root == nil {
		return "<nil>\n"
	}
	p := tp.NewWithRoot(label(root))
	ppt(p, root)
	return p.String()
}

func ppt(p tp.Tree, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.FirstChild == nil {
			p.AddNode(label(c))
			continue
		}
		ppt(p.AddBranch(label(c)), c)
	}
}

func label(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return fmt.Sprintf("%q", shortText(n.Data, 24))
	case html.CommentNode:
		return "<!--" + shortText(n.Data, 24) + "-->"
	case html.DocumentNode:
		if dom.IsFragment(n) {
			return "#fragment"
		}
		return "#document"
	case html.ElementNode:
		s := "<" + n.Data + ">"
		if cat := dom.CategoryOf(n); cat != dom.Generic {
			s += " " + cat.String()
		}
		if st := style.InlineText(n); st != "" {
			s += " {" + st + "}"
		}
		return s
	}
	return n.Data
}

func shortText(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l]) + "…"
	}
	return s
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a node tree. The diagram is in
// GraphViz (DOT) format. Elements are colored by category.
func ToGraphViz(root *html.Node, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": dotText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*html.Node]string, 1024)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a node and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *html.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N      *html.Node
	Name   string
	Label  string
	Color  string
	IsText bool
}

var categoryColors = map[dom.Category]string{
	dom.Generic:            "lightblue3",
	dom.SelfContainedBlock: "darkseagreen3",
	dom.FormatBlock:        "lightgoldenrod2",
	dom.Component:          "plum3",
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		nodes(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	nd := &node{N: n, Name: name, Label: label(n), Color: categoryColors[dom.CategoryOf(n)],
		IsText: n.Type == html.TextNode}
	if err := gparams.NodeTmpl.Execute(w, nd); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 string
}

func domEdge(n1 *html.Node, n2 *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	if err := gparams.EdgeTmpl.Execute(w, edge{dict[n1], dict[n2]}); err != nil {
		panic(err)
	}
}

func dotText(n *html.Node) string {
	s := "\"\\\"" + shortText(n.Data, 10) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor={{ .Color }} ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
