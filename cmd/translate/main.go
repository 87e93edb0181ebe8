package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hindime/internal/logger"
	"github.com/jusunglee/hindime/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.New()

	fs := ff.NewFlagSet("translate")
	var (
		jobs = fs.IntLong("jobs", 4, "Concurrent workers for stdin batch mode")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("HINDIME")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	// Arguments form one phrase; with none, translate stdin line by line.
	if args := fs.GetArgs(); len(args) > 0 {
		fmt.Println(transliteration.Translate(strings.Join(args, " ")))
		return nil
	}
	return translateLines(os.Stdin, os.Stdout, *jobs)
}

// translateLines translates every line of r and writes the results to
// w in input order. Lines are independent, so they fan out across a
// bounded worker group.
func translateLines(r io.Reader, w io.Writer, jobs int) error {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	results := make([]string, len(lines))
	var eg errgroup.Group
	eg.SetLimit(jobs)
	for i, line := range lines {
		eg.Go(func() error {
			results[i] = transliteration.Translate(line)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
