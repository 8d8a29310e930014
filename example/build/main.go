package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/oyemi/lexicon"
	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/kb"
)

func main() {
	snapshotPath := flag.String("snapshot", "snapshot.jsonl", "path to the knowledge base snapshot (JSONL, one concept per line)")
	validateOnly := flag.Bool("validate", false, "skip the build and only validate the existing artifact")
	flag.Parse()

	// Driver and artifact path come from the environment (or .env);
	// defaults to a local SQLite file.
	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}

	source := kb.NewSnapshot(*snapshotPath)

	if *validateOnly {
		lex, err := lexicon.NewLexicon(dbConfig)
		if err != nil {
			log.Fatalf("Failed to open lexicon: %v", err)
		}
		defer lex.Close()

		report, err := lex.Validate(source)
		if err != nil {
			log.Fatalf("Failed to validate lexicon: %v", err)
		}
		if !report.Passed() {
			for _, issue := range report.Issues() {
				fmt.Println(issue)
			}
			log.Fatal("Validation failed")
		}
		fmt.Println("Validation passed")
		return
	}

	lex, err := lexicon.NewRebuildLexicon(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create lexicon: %v", err)
	}
	defer lex.Close()

	stats, err := lex.Build(source)
	if err != nil {
		log.Fatalf("Failed to build lexicon: %v", err)
	}
	fmt.Println(lexicon.FormatStats(stats))

	report, err := lex.Validate(source)
	if err != nil {
		log.Fatalf("Failed to validate lexicon: %v", err)
	}
	if !report.Passed() {
		log.Fatal("Validation failed")
	}

	// A few lookups against the fresh artifact.
	for _, word := range []string{"layoff", "fired", "happy"} {
		codes, err := lex.Lookup(word)
		if err != nil {
			log.Fatalf("Failed to look up %q: %v", word, err)
		}
		fmt.Printf("%s: %v\n", word, codes)
	}
}
