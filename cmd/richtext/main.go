// Command richtext runs the editor commands on HTML content from the command
// line.
//
// Usage:
//
//	richtext [flags] source   [file]   # print the source view
//	richtext [flags] markdown [file]   # print the content as Markdown
//	richtext [flags] tree     [file]   # print the node tree
//	richtext [flags] style    [file]   # style the content, see -prop and -value
//	richtext [flags] paste    [file]   # filter pasted markup (or text with -text)
//	richtext [flags] live     [file]   # style the content in Chrome
//
// Content is read from file, or from stdin if file is missing or "-".
// Flags are:
//
//	-config  path to a YAML configuration file
//	-indent  indentation width of the source view (overrides config)
//	-prop    style property for "style" and "live" (default line-height)
//	-value   style value for "style" and "live"
//	-text    treat pasted input as plain text
//	-trace   trace level: Error, Info or Debug (overrides config)
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/richtext/config"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/domdbg"
	"github.com/npillmayer/richtext/editor"
	"github.com/npillmayer/richtext/paste"
	"github.com/npillmayer/richtext/selection"
	"github.com/npillmayer/richtext/selection/rodhost"
	"github.com/npillmayer/richtext/source"
	"github.com/npillmayer/richtext/styler"
	"golang.org/x/net/html"
)

// editorID is the id of the editable element in live sessions.
const editorID = "richtext-editor"

type options struct {
	prop, value string
	text        bool
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	indent := flag.Int("indent", -1, "indentation width of the source view")
	prop := flag.String("prop", "line-height", "style property")
	value := flag.String("value", "", "style value")
	text := flag.Bool("text", false, "paste plain text")
	trace := flag.String("trace", "", "trace level: Error, Info, Debug")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath, *indent, *trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "richtext: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyTraceLevel()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := options{prop: *prop, value: *value, text: *text}
	if err := run(ctx, cfg, flag.Arg(0), flag.Arg(1), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "richtext: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: richtext [flags] source|markdown|tree|style|paste|live [file]")
	flag.PrintDefaults()
}

func loadConfig(path string, indent int, trace string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if indent >= 0 {
		cfg.Indent = indent
	}
	if trace != "" {
		cfg.TraceLevel = trace
	}
	return cfg, nil
}

func readInput(file string) (string, error) {
	var r io.Reader = os.Stdin
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func run(ctx context.Context, cfg *config.Config, cmd, file string, opts options, w io.Writer) error {
	input, err := readInput(file)
	if err != nil {
		return err
	}
	switch cmd {
	case "paste":
		return runPaste(cfg, input, opts, w)
	case "live":
		return runLive(ctx, cfg, input, opts, w)
	}
	root, err := dom.ParseContainer(input)
	if err != nil {
		return err
	}
	ed, err := selectAll(root, cfg)
	if err != nil {
		return err
	}
	switch cmd {
	case "source":
		text, _ := ed.ToggleSource()
		_, err = io.WriteString(w, text)
	case "markdown":
		var md string
		if md, err = ed.Markdown(); err == nil {
			_, err = io.WriteString(w, md)
		}
	case "tree":
		_, err = io.WriteString(w, domdbg.Tree(root))
	case "style":
		if !ed.Style(opts.prop, opts.value) {
			return fmt.Errorf("cannot set %s to %q", opts.prop, opts.value)
		}
		_, err = fmt.Fprintln(w, ed.HTML())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return err
}

// selectAll creates an editor for root with the complete content selected.
func selectAll(root *html.Node, cfg *config.Config) (*editor.Editor, error) {
	r := dom.NewRange(root)
	if err := r.SelectNodeContents(root); err != nil {
		return nil, err
	}
	return editor.New(root, selection.For(selection.NewSelection(r)), cfg)
}


func runPaste(cfg *config.Config, input string, opts options, w io.Writer) error {
	f := paste.NewFilter(cfg.PasteOptions())
	var markup string
	if opts.text {
		markup = f.Text(input)
	} else {
		markup = f.HTML(input)
	}
	_, err := fmt.Fprintln(w, markup)
	return err
}

// runLive loads the content into a contenteditable element of a Chrome
// page, selects all of it and restyles the selection in the page.
func runLive(ctx context.Context, cfg *config.Config, input string, opts options, w io.Writer) error {
	value, err := editor.NormalizeStyle(cfg, opts.prop, opts.value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Browser.Timeout)
	defer cancel()
	b, err := rodhost.Launch(ctx, cfg.Browser.Remote, cfg.Browser.Headless)
	if err != nil {
		return err
	}
	defer b.Close()
	doc := fmt.Sprintf(`<html><body><div id="%s" contenteditable="true">%s</div></body></html>`,
		editorID, input)
	page, err := b.Open(ctx, doc)
	if err != nil {
		return err
	}
	if err = page.SelectContents("#" + editorID); err != nil {
		return err
	}
	cl, err := cfg.Classifier()
	if err != nil {
		return err
	}
	st := styler.New(cfg.WrapperTag, cl)
	if !editor.StyleSelection(selection.For(page), st, opts.prop, value) {
		return errors.New("cannot style the selection in the page")
	}
	result, err := page.InnerHTML("#" + editorID)
	if err != nil {
		return err
	}
	s := source.New(cfg.Indent)
	s.Classifier = cl
	out, err := s.SerializeMarkup(result)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
