// protolink CLI - runs the function binding and type composition demos
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/protolink/demo"
	"github.com/chazu/protolink/event"
	"github.com/chazu/protolink/manifest"
	"github.com/chazu/protolink/vm"
)

var log = commonlog.GetLogger("protolink")

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	configDir := flag.String("config", ".", "Directory to search upward for "+manifest.FileName)
	which := flag.String("demo", "all", "Demo to run: binding, inheritance, all")
	noColor := flag.Bool("no-color", false, "Disable styled headings")
	initConfig := flag.Bool("init", false, "Write a default "+manifest.FileName+" to the config directory and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: protolink [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the function binding and type composition demos.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  protolink                      # Run both demos\n")
		fmt.Fprintf(os.Stderr, "  protolink -demo binding        # Run the binding demo only\n")
		fmt.Fprintf(os.Stderr, "  protolink -init -config ./cfg  # Write cfg/%s\n", manifest.FileName)
	}
	flag.Parse()

	if *initConfig {
		if err := manifest.Write(*configDir, manifest.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m, err := manifest.LoadOrDefault(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	verbosity := m.Log.Verbosity
	if *verbose {
		verbosity += 2
	}
	commonlog.Configure(verbosity, m.LogPath())
	if m.Dir != "" {
		log.Infof("loaded %s from %s", manifest.FileName, m.Dir)
	}

	heading := plainHeading
	if !*noColor && isTerminal(os.Stdout) {
		heading = styledHeading
	}

	if err := run(os.Stdout, m, *which, heading); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the selected demos in order, each under a heading.
func run(w io.Writer, m *manifest.Manifest, which string, heading func(string) string) error {
	type entry struct {
		name  string
		title string
		fn    func() error
	}
	demos := []entry{
		{"binding", "Function binding", func() error {
			return demo.Binding(w, event.NewDocument(), m.Binding)
		}},
		{"inheritance", "Parasitic combination inheritance", func() error {
			return demo.Inheritance(w, vm.NewRegistry(), m.Inheritance)
		}},
	}

	ran := 0
	for _, d := range demos {
		if which != "all" && which != d.name {
			continue
		}
		if ran > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, heading(d.title))
		if err := d.fn(); err != nil {
			return fmt.Errorf("%s demo: %w", d.name, err)
		}
		ran++
	}
	if ran == 0 {
		return fmt.Errorf("unknown demo %q (want binding, inheritance or all)", which)
	}
	return nil
}

func plainHeading(title string) string {
	return "== " + title + " =="
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

func styledHeading(title string) string {
	return headingStyle.Render(title)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
