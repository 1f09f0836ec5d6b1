// Command itc converts between issue-tracker text representations:
// ADF JSON to flat display text, and wiki-style or Markdown comment
// text to ADF JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/issuetext/issuetext/converter"
	"github.com/issuetext/issuetext/display"
	"github.com/issuetext/issuetext/field"
	"github.com/issuetext/issuetext/mdconverter"
	"github.com/issuetext/issuetext/wikiconverter"
)

func parseEndpoint(name string) (field.Endpoint, error) {
	switch name {
	case "", "auto":
		return field.EndpointAuto, nil
	case "legacy":
		return field.EndpointLegacy, nil
	case "modern":
		return field.EndpointModern, nil
	default:
		return field.EndpointAuto, fmt.Errorf("unknown endpoint %q (allowed: auto, legacy, modern)", name)
	}
}

func reportWarnings(warnings []converter.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning.Message)
	}
}

func printDoc(doc interface{}) error {
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

func main() {
	encode := flag.Bool("encode", false, "Encode wiki-style text to ADF JSON")
	markdown := flag.Bool("markdown", false, "Encode Markdown text to ADF JSON")
	body := flag.Bool("body", false, "Build the outgoing comment payload (see -endpoint)")
	endpoint := flag.String("endpoint", "auto", "Outgoing endpoint for -body: auto|legacy|modern")
	colored := flag.Bool("color", false, "Colorize decoded flat text for terminals")
	xmlOut := flag.Bool("xml", false, "XML-escape decoded flat text")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: itc [options] <input-file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *body:
		target, err := parseEndpoint(*endpoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid endpoint: %v\n", err)
			os.Exit(1)
		}
		if err := printDoc(field.Encode(string(data), target)); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting payload: %v\n", err)
			os.Exit(1)
		}

	case *encode:
		result := wikiconverter.Convert(string(data))
		reportWarnings(result.Warnings)
		if err := printDoc(result.Doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting ADF JSON: %v\n", err)
			os.Exit(1)
		}

	case *markdown:
		result := mdconverter.New().Convert(string(data))
		reportWarnings(result.Warnings)
		if err := printDoc(result.Doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting ADF JSON: %v\n", err)
			os.Exit(1)
		}

	default:
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
		conv, err := converter.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}

		text := field.Flatten(json.RawMessage(data), conv)
		switch {
		case *colored:
			fmt.Print(display.Terminal(text))
		case *xmlOut:
			fmt.Print(display.XMLEscape(text))
		default:
			fmt.Print(text)
		}
	}
}
