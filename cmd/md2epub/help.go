package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown notes to an EPUB")
	fmt.Fprintln(w, "  scan       List the notes a folder conversion would include, in order")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2epub help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub convert <notes...|folder> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown notes to an EPUB. File arguments become chapters in the")
	fmt.Fprintln(w, "order given. A folder argument is scanned recursively; notes are ordered")
	fmt.Fprintln(w, "by their frontmatter chapter number, then by filename.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output .epub path (default: book.epub)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -t, --tag <s>               Folder scan: only notes with this tag")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Book:")
	fmt.Fprintln(w, "      --title <s>             Book title (\"\" = from first note)")
	fmt.Fprintln(w, "      --subtitle <s>          Book subtitle")
	fmt.Fprintln(w, "      --author <s>            Author (\"\" = from first note)")
	fmt.Fprintln(w, "      --language <s>          BCP 47 language tag (default: en)")
	fmt.Fprintln(w, "      --publisher <s>         Publisher name")
	fmt.Fprintln(w, "      --copyright-year <s>    Copyright year (default: current year)")
	fmt.Fprintln(w, "      --copyright-holder <s>  Copyright holder (default: author)")
	fmt.Fprintln(w, "      --cover <path>          Cover image, resolved like an embed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pipeline:")
	fmt.Fprintln(w, "      --vault-root <path>     Vault directory for embed resolution")
	fmt.Fprintln(w, "      --wikilinks <s>         Unresolved wikilinks: strip, styled")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style name (default: github)")
	fmt.Fprintln(w, "      --no-highlight          Disable syntax highlighting")
	fmt.Fprintln(w, "      --no-toc                No inline table of contents page")
	fmt.Fprintln(w, "      --no-optimize-images    Embed images without downscaling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show per-note details")
}

// printScanUsage prints usage for the scan command.
func printScanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub scan <folder> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the notes a folder conversion would include, in chapter order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --tag <s>       Only list notes with this frontmatter tag")
	fmt.Fprintln(w, "  -c, --config <name> Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "scan":
		printScanUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2epub version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2epub help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
