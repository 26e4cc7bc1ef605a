package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"morphembed/internal/accumulator"
	"morphembed/internal/config"
	"morphembed/internal/domain"
	"morphembed/internal/embedding"
	"morphembed/internal/embedding/heuristic"
	"morphembed/internal/lexicon"
	"morphembed/internal/logging"
	"morphembed/internal/segmenter"
	"morphembed/internal/service"
	"morphembed/internal/tui"
	"morphembed/internal/wordlist"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var plain bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/morphembed/config.yaml if not provided)")
	flag.BoolVar(&plain, "plain", false, "Print the breakdowns and embedding table to stdout instead of the TUI")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Log.Level)

	// Assemble components
	var lex domain.Lexicon
	if cfg.Lexicon.Path != "" {
		lex, err = lexicon.LoadFile(wordlist.ExpandTilde(cfg.Lexicon.Path))
		if err != nil {
			log.Fatalf("failed to load lexicon: %v", err)
		}
	} else {
		lex = lexicon.Builtin()
	}

	tables := segmenter.DefaultTables()
	if len(cfg.Segmenter.Prefixes) > 0 {
		tables.Prefixes = cfg.Segmenter.Prefixes
	}
	if len(cfg.Segmenter.Suffixes) > 0 {
		tables.Suffixes = cfg.Segmenter.Suffixes
	}
	if len(cfg.Segmenter.RootPatterns) > 0 {
		tables.RootPatterns = cfg.Segmenter.RootPatterns
	}
	tables.ChunkSize = cfg.Segmenter.ChunkSize
	seg := segmenter.New(tables)

	var emb embedding.Embedder
	switch cfg.Embedder.Type {
	case "heuristic", "":
		if len(cfg.Embedder.SensoryKeywords) > 0 || len(cfg.Embedder.AbstractKeywords) > 0 {
			emb = heuristic.NewEmbedderWithKeywords(cfg.Embedder.SensoryKeywords, cfg.Embedder.AbstractKeywords)
		} else {
			emb = heuristic.NewEmbedder()
		}
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	// Gather input words: word-list files from the arguments, or the
	// lexicon's own headwords as the built-in sample.
	var words []string
	for _, path := range flag.Args() {
		fileWords, err := wordlist.ReadFile(wordlist.ExpandTilde(path))
		if err != nil {
			log.Fatalf("failed to read word list %s: %v", path, err)
		}
		words = append(words, fileWords...)
	}
	if len(words) == 0 {
		words = lex.Words()
	}
	if len(words) == 0 {
		fmt.Println("No words supplied; provide a newline separated list or rely on the built-in sample.")
		return
	}

	svc := service.New(lex, seg, emb, logger)
	fmt.Printf("Processing %d words...\n", len(words))
	reports := svc.Process(words)

	if plain {
		printReports(reports)
		printTable(svc.Rows(), svc.Dimension())
		return
	}

	m := tui.New(svc, svc.Summary())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

func printReports(reports []domain.WordReport) {
	for _, r := range reports {
		switch r.Status {
		case domain.ReportUnmatched:
			fmt.Printf("- %s: no entry available in the bundled lexicon\n", r.Word)
		case domain.ReportUnsegmentable:
			fmt.Printf("- %s: no morphemic chunks produced by the segmenter\n", r.Word)
		default:
			parts := make([]string, len(r.Morphemes))
			for i, m := range r.Morphemes {
				parts[i] = m.String()
			}
			fmt.Printf("- %s: %s\n", r.Word, strings.Join(parts, " + "))
			fmt.Printf("  definition: %s\n", r.Definition)
		}
	}
}

func printTable(rows []accumulator.Row, dims int) {
	fmt.Println()
	fmt.Printf("Derived morpheme embedding matrix (%d morphemes x %d features):\n", len(rows), dims)
	for _, row := range rows {
		vals := make([]string, len(row.Mean))
		for i, v := range row.Mean {
			vals[i] = fmt.Sprintf("%.3f", v)
		}
		fmt.Printf("  %-22s -> [%s]\n", row.Key.String(), strings.Join(vals, ", "))
	}
}
