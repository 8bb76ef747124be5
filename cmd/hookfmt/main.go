package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	hookfmt "github.com/hookfmt/hookfmt"
	"github.com/hookfmt/hookfmt/source"
)

func main() {
	fs := flag.NewFlagSet("hookfmt", flag.ExitOnError)
	var (
		in     string
		format string
		pretty bool
	)
	fs.StringVar(&in, "f", "", "message document to transcode (YAML or JSON)")
	fs.StringVar(&format, "format", "auto", "input format: yaml, json, or auto (by extension)")
	fs.BoolVar(&pretty, "pretty", false, "indent the wire JSON")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatal(err)
	}
	tree, err := decode(data, resolveFormat(format, in))
	if err != nil {
		fatal(err)
	}
	payload, err := hookfmt.Transcode(tree, cliRegistry())
	if err != nil {
		fatal(err)
	}
	out, err := encode(payload, pretty)
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "hookfmt transcodes a message document into wire JSON.\n\nUsage:\n  hookfmt -f message.yaml [-format yaml|json|auto] [-pretty]\n\nBuilt-in inject sources:\n  env  {source: env, name: VAR}  value of an environment variable\n  now  {source: now}             current timestamp")
		fs.PrintDefaults()
	}
}

func resolveFormat(format, path string) string {
	if format != "auto" {
		return format
	}
	switch filepath.Ext(path) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

func decode(data []byte, format string) (map[string]any, error) {
	switch format {
	case "json":
		return source.JSONBytes(data)
	case "yaml":
		return source.YAMLBytes(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func encode(p *hookfmt.Payload, pretty bool) ([]byte, error) {
	if pretty {
		return hookfmt.EncodeJSONIndent(p)
	}
	return hookfmt.EncodeJSON(p)
}

// cliRegistry exposes the inject sources available from the command line.
func cliRegistry() hookfmt.Registry {
	return hookfmt.Registry{
		"env": func(opts map[string]any) (any, error) {
			name, _ := opts["name"].(string)
			if name == "" {
				return nil, fmt.Errorf("env source needs a name option")
			}
			return os.Getenv(name), nil
		},
		"now": func(opts map[string]any) (any, error) {
			return time.Now(), nil
		},
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "hookfmt:", err)
	os.Exit(1)
}
