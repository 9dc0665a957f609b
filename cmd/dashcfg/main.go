package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	dashcfg "github.com/reoring/dashcfg"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	case "merge":
		mergeCmd(os.Args[2:])
	case "sample":
		sampleCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "dashcfg CLI\n\nUsage:\n  dashcfg validate [-q] <file|->\n  dashcfg export [-format json|yaml] [-compact] <file|->\n  dashcfg merge <base-file> <override-file>\n  dashcfg sample [-default] [-format json|yaml]\n\nNotes:\n  - \"-\" reads the configuration text from stdin.\n  - validate exits 1 when the input cannot be parsed or has blocking diagnostics.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	quiet := fs.Bool("q", false, "suppress diagnostic listing; exit code only")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	v, ok := dashcfg.Parse(readInput(fs.Arg(0)))
	if !ok {
		fatalf("could not parse configuration")
	}
	iss := dashcfg.Validate(v)
	if !*quiet {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s %s at %s: %s\n", it.Severity, it.Code, it.Path, it.Message)
		}
	}
	if iss.HasErrors() {
		os.Exit(1)
	}
}

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "json", "output format: json or yaml")
	compact := fs.Bool("compact", false, "emit compact JSON")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	cfg := loadConfig(fs.Arg(0))
	fmt.Print(render(cfg, *format, !*compact))
}

func mergeCmd(args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(2)
	}
	base := loadConfig(fs.Arg(0))
	override := loadConfig(fs.Arg(1))
	fmt.Print(dashcfg.EncodeJSON(dashcfg.Merge(base, override), true))
}

func sampleCmd(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	def := fs.Bool("default", false, "emit the minimal default instead of the demo sample")
	format := fs.String("format", "json", "output format: json or yaml")
	_ = fs.Parse(args)
	cfg := dashcfg.SampleConfig()
	if *def {
		cfg = dashcfg.DefaultConfig()
	}
	fmt.Print(render(cfg, *format, true))
}

func render(cfg *dashcfg.Config, format string, pretty bool) string {
	switch format {
	case "json":
		return dashcfg.EncodeJSON(cfg, pretty)
	case "yaml":
		return dashcfg.EncodeYAML(cfg)
	default:
		fatalf("unknown format %q (want json or yaml)", format)
		return ""
	}
}

func loadConfig(path string) *dashcfg.Config {
	v, ok := dashcfg.Parse(readInput(path))
	if !ok {
		fatalf("%s: could not parse configuration", path)
	}
	cfg, err := dashcfg.Decode(v)
	if err != nil {
		fatalf("%s: %v", path, err)
	}
	return cfg
}

func readInput(path string) string {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("read stdin: %v", err)
		}
		return string(data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	return string(data)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "dashcfg: "+format+"\n", args...)
	os.Exit(1)
}
