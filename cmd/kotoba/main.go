package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// Commands read SITE_* variables; a .env in the working directory
	// counts the same as the real environment.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: kotoba new <project-name>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "optimize-images":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: kotoba optimize-images <dir>")
			os.Exit(1)
		}
		if err := runOptimizeImages(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("kotoba %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`kotoba - a multilingual Markdown content engine built with Go, Echo, and templ

Usage:
  kotoba <command> [arguments]

Commands:
  new <name>             Create a new kotoba site project
  optimize-images <dir>  Resize and re-encode images for the web
  version                Print the kotoba version
  help                   Show this help message

Examples:
  kotoba new mysite
  kotoba new github.com/user/mysite
  kotoba optimize-images public/images`)
}
