package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit"
)

const version = "0.1.0"

func usage(w io.Writer) {
	fmt.Fprintln(w, "docxedit - Read and edit the text of DOCX files")
	fmt.Fprintln(w, "\nUsage: docxedit <command> [arguments]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  text [-tables] <file>                          Print paragraph text")
	fmt.Fprintln(w, "  replace [-config f.yaml] [-o out] <file> [old new]...  Replace text in runs")
	fmt.Fprintln(w, "  append [-o out] <file> <text>                  Append a paragraph")
	fmt.Fprintln(w, "  version                                        Show version information")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "docxedit version %s\n", version)
		return 0
	case "text":
		err = runText(args[1:], stdout)
	case "replace":
		err = runReplace(args[1:], stdout)
	case "append":
		err = runAppend(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		usage(stderr)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runText(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	tables := fs.Bool("tables", false, "also print table cells")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("text needs exactly one file")
	}

	doc, err := docxedit.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, doc.Text())

	if *tables {
		header := color.New(color.FgCyan)
		n := 0
		for t := range doc.Tables().All() {
			n++
			header.Fprintf(stdout, "table %d\n", n)
			for row := range t.Rows().All() {
				sep := ""
				for cell := range row.Cells().All() {
					fmt.Fprint(stdout, sep, cell.Paragraphs().Text())
					sep = "\t"
				}
				fmt.Fprintln(stdout)
			}
		}
	}
	return nil
}

func runReplace(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML replacement file")
	output := fs.String("o", "", "write to this file instead of editing in place")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("replace needs a file")
	}

	replacements, err := ParsePairs(fs.Args()[1:])
	if err != nil {
		return err
	}
	if *configPath != "" {
		fromFile, err := LoadReplacements(*configPath)
		if err != nil {
			return err
		}
		replacements = append(fromFile, replacements...)
	}
	if len(replacements) == 0 {
		return errors.New("no replacements given")
	}

	doc, err := docxedit.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	total := 0
	for _, r := range replacements {
		n, err := doc.ReplaceText(r.Old, r.New)
		if err != nil {
			return err
		}
		total += n
		c := color.New(color.FgGreen)
		if n == 0 {
			c = color.New(color.FgYellow)
		}
		c.Fprintf(stdout, "%q -> %q: %d run(s)\n", r.Old, r.New, n)
	}

	if err := save(doc, *output); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d run(s) changed\n", total)
	return nil
}

func runAppend(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("append", flag.ContinueOnError)
	output := fs.String("o", "", "write to this file instead of editing in place")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("append needs a file and a text")
	}

	doc, err := docxedit.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	if _, err := doc.AppendParagraph(fs.Arg(1)); err != nil {
		return err
	}
	if err := save(doc, *output); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "paragraph appended")
	return nil
}

func save(doc *docxedit.Document, output string) error {
	if output == "" {
		return doc.Save()
	}
	return doc.SaveAs(output)
}
