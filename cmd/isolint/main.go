package main

import (
	"bytes"
	"encoding/xml"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/jacoelho/iso20022"
	isoerrors "github.com/jacoelho/iso20022/errors"
	"github.com/jacoelho/iso20022/registry"
)

const (
	formatXML  = "xml"
	formatJSON = "json"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("isolint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	messageID := fs.String("message", "", "message identifier, e.g. camt.056.001.11 (detected from the namespace for XML)")
	format := fs.String("format", formatXML, "document format: xml or json")
	complete := fs.Bool("complete", false, "also report every missing required element")
	exclusive := fs.Bool("exclusive-choices", false, "with -complete, report choices with more than one alternative set")
	list := fs.Bool("list", false, "list the supported message identifiers and exit")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <document>\n\n", os.Args[0]),
			writeln(stderr, "Validates an ISO 20022 message document."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, d := range registry.All() {
			if err := writef(stdout, "%s\t%s\n", d.ID, d.Namespace); err != nil {
				return 1
			}
		}
		return 0
	}

	usage := func(msg string) int {
		if err := writeln(stderr, "error: "+msg); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return usage("exactly one document argument is required")
	}
	if *format != formatXML && *format != formatJSON {
		return usage(fmt.Sprintf("unknown format %q", *format))
	}
	if *format == formatJSON && *messageID == "" {
		return usage("-message is required for json documents")
	}
	if *exclusive && !*complete {
		return usage("-exclusive-choices requires -complete")
	}
	docPath := remaining[0]

	logger, err := newLogger(*verbose)
	if err != nil {
		if writeErr := writef(stderr, "error creating logger: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(docPath)
	if err != nil {
		if writeErr := writef(stderr, "error reading document: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	def, err := resolve(*messageID, *format, data)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}
	logger.Debug("resolved message definition",
		zap.String("file", docPath),
		zap.String("message", def.ID),
		zap.String("format", *format))

	msg := def.New()
	if err := decode(*format, data, msg); err != nil {
		if violations, ok := isoerrors.AsValidations(err); ok {
			return fails(stderr, docPath, violations)
		}
		if writeErr := writef(stderr, "error decoding %s: %v\n", docPath, err); writeErr != nil {
			return 1
		}
		return 1
	}

	if err := msg.Validate(); err != nil {
		logger.Debug("leaf validation failed", zap.Error(err))
		if violations, ok := isoerrors.AsValidations(err); ok {
			return fails(stderr, docPath, violations)
		}
		if writeErr := writef(stderr, "error validating: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	if *complete {
		var opts []iso20022.CompleteOption
		if *exclusive {
			opts = append(opts, iso20022.ExclusiveChoices())
		}
		if err := iso20022.CheckComplete(msg, opts...); err != nil {
			if violations, ok := isoerrors.AsValidations(err); ok {
				logger.Debug("completeness check failed", zap.Int("findings", len(violations)))
				return fails(stderr, docPath, violations)
			}
			if writeErr := writef(stderr, "error checking completeness: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
	}

	if err := writef(stdout, "%s validates\n", docPath); err != nil {
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

// resolve picks the message definition named by id, or for XML the one
// owning the namespace of the root Document element.
func resolve(id, format string, data []byte) (registry.Definition, error) {
	if id != "" {
		def, ok := registry.Lookup(id)
		if !ok {
			return registry.Definition{}, fmt.Errorf("unsupported message %q", id)
		}
		return def, nil
	}
	if format != formatXML {
		return registry.Definition{}, fmt.Errorf("cannot detect message for %s documents", format)
	}
	ns, err := rootNamespace(data)
	if err != nil {
		return registry.Definition{}, err
	}
	def, ok := registry.ByNamespace(ns)
	if !ok {
		return registry.Definition{}, fmt.Errorf("unsupported namespace %q", ns)
	}
	return def, nil
}

func rootNamespace(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("no root element")
			}
			return "", fmt.Errorf("read root element: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != "Document" {
				return "", fmt.Errorf("root element is %s, expected Document", start.Name.Local)
			}
			return start.Name.Space, nil
		}
	}
}

func decode(format string, data []byte, msg registry.Message) error {
	if format == formatJSON {
		if err := json.Unmarshal(data, msg); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		return nil
	}
	if err := xml.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode xml: %w", err)
	}
	return nil
}

func fails(stderr io.Writer, docPath string, violations []isoerrors.Validation) int {
	for _, v := range violations {
		if writeErr := writeln(stderr, v.Error()); writeErr != nil {
			return 1
		}
	}
	if writeErr := writef(stderr, "%s fails to validate\n", docPath); writeErr != nil {
		return 1
	}
	return 1
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
