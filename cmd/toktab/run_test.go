package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runWith(t *testing.T, opts RunOptions) (string, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if err := runPipelineCommand(opts, ui); err != nil {
		t.Fatalf("run failed: %v (stderr: %s)", err, errOut.String())
	}

	table, err := os.ReadFile(opts.Output)
	if err != nil {
		t.Fatal(err)
	}

	return string(table), out.String(), errOut.String()
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:  writeInput(t, dir, "The cat sat on the mat.\n"),
		Output: filepath.Join(dir, "result.tsv"),
		Kept:   filepath.Join(dir, "kept.txt"),
	}

	table, _, _ := runWith(t, opts)

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	if lines[0] != "token\tpos\tlemma\tkept" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// 7 tokens, one row each, none dropped from the table
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d: %q", len(lines), table)
	}
	if lines[1] != "The\tdeterminer\tthe\tfalse" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "cat\tnoun\tcat\ttrue" {
		t.Errorf("unexpected second row: %q", lines[2])
	}

	kept, err := os.ReadFile(opts.Kept)
	if err != nil {
		t.Fatal(err)
	}
	if string(kept) != "cat\nsat\nmat\n" {
		t.Errorf("unexpected kept tokens: %q", kept)
	}
}

func TestRunKeptToStdout(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:  writeInput(t, dir, "The cat sat on the mat.\n"),
		Output: filepath.Join(dir, "result.tsv"),
	}

	_, out, _ := runWith(t, opts)
	if out != "cat\nsat\nmat\n" {
		t.Errorf("unexpected stdout: %q", out)
	}
}

func TestRunEmptyInput(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:  writeInput(t, dir, ""),
		Output: filepath.Join(dir, "result.tsv"),
		Kept:   filepath.Join(dir, "kept.txt"),
	}

	table, _, _ := runWith(t, opts)
	if table != "token\tpos\tlemma\tkept\n" {
		t.Errorf("expected only the header, got %q", table)
	}

	kept, err := os.ReadFile(opts.Kept)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 0 {
		t.Errorf("expected empty kept file, got %q", kept)
	}
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:  filepath.Join(dir, "missing.txt"),
		Output: filepath.Join(dir, "result.tsv"),
	}

	var out, errOut bytes.Buffer
	if err := runPipelineCommand(opts, UI{Out: &out, Err: &errOut}); err == nil {
		t.Fatal("expected an error for a missing input file")
	}

	if _, err := os.Stat(opts.Output); !os.IsNotExist(err) {
		t.Fatal("expected no output file to be written")
	}
}

func TestRunManualModeEmptyStoreFallsBackToRules(t *testing.T) {
	dir := t.TempDir()

	store := filepath.Join(dir, "labels.json")
	if err := os.WriteFile(store, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	opts := RunOptions{
		Input:       writeInput(t, dir, "The cat sat on the mat.\n"),
		Output:      filepath.Join(dir, "result.tsv"),
		Kept:        filepath.Join(dir, "kept.txt"),
		Pos:         "manual",
		ManualStore: store,
	}

	table, _, _ := runWith(t, opts)
	if !strings.Contains(table, "The\tdeterminer\tthe\tfalse") {
		t.Errorf("expected rule fallback tags, got %q", table)
	}
}

func TestRunManualModeUsesStore(t *testing.T) {
	dir := t.TempDir()

	store := filepath.Join(dir, "labels.json")
	if err := os.WriteFile(store, []byte(`{"sat": "verb"}`), 0644); err != nil {
		t.Fatal(err)
	}

	opts := RunOptions{
		Input:       writeInput(t, dir, "The cat sat on the mat.\n"),
		Output:      filepath.Join(dir, "result.tsv"),
		Kept:        filepath.Join(dir, "kept.txt"),
		Pos:         "manual",
		ManualStore: store,
	}

	table, _, _ := runWith(t, opts)
	if !strings.Contains(table, "sat\tverb\tsat\ttrue") {
		t.Errorf("expected stored verb label for sat, got %q", table)
	}
}

func TestRunWithLemmaDataset(t *testing.T) {
	dir := t.TempDir()

	dataset := filepath.Join(dir, "lemmas.txt")
	if err := os.WriteFile(dataset, []byte("sit\tsat\nmalformed line without tab\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts := RunOptions{
		Input:        writeInput(t, dir, "The cat sat on the mat.\n"),
		Output:       filepath.Join(dir, "result.tsv"),
		Kept:         filepath.Join(dir, "kept.txt"),
		LemmaDataset: dataset,
	}

	table, _, errOut := runWith(t, opts)
	if !strings.Contains(table, "sat\tnoun\tsit\ttrue") {
		t.Errorf("expected dataset lemma sit, got %q", table)
	}
	// the malformed line is skipped with a warning, the run continues
	if !strings.Contains(errOut, "line 2") {
		t.Errorf("expected a warning for line 2, got %q", errOut)
	}
}

func TestRunMissingDatasetFails(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:        writeInput(t, dir, "The cat.\n"),
		Output:       filepath.Join(dir, "result.tsv"),
		LemmaDataset: filepath.Join(dir, "missing.txt"),
	}

	var out, errOut bytes.Buffer
	if err := runPipelineCommand(opts, UI{Out: &out, Err: &errOut}); err == nil {
		t.Fatal("expected an error for a missing dataset file")
	}
}

func TestRunJSONFormat(t *testing.T) {
	dir := t.TempDir()

	opts := RunOptions{
		Input:  writeInput(t, dir, "The cat.\n"),
		Output: filepath.Join(dir, "result.json"),
		Kept:   filepath.Join(dir, "kept.txt"),
		Format: "json",
	}

	table, _, _ := runWith(t, opts)
	if !strings.Contains(table, `"text": "cat"`) {
		t.Errorf("expected JSON records, got %q", table)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "toktab.yaml")
	if err := os.WriteFile(cfgPath, []byte("stopwords:\n  - cat\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts := RunOptions{
		Input:  writeInput(t, dir, "The cat sat.\n"),
		Output: filepath.Join(dir, "result.tsv"),
		Kept:   filepath.Join(dir, "kept.txt"),
		Config: cfgPath,
	}

	table, _, _ := runWith(t, opts)
	// the custom set fully replaces the default: cat dropped, The kept
	if !strings.Contains(table, "cat\tnoun\tcat\tfalse") {
		t.Errorf("expected cat dropped by config stopwords, got %q", table)
	}
	if !strings.Contains(table, "The\tdeterminer\tthe\ttrue") {
		t.Errorf("expected The kept with config stopwords, got %q", table)
	}
}

func TestParseRunArgsRequiresInputAndOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if _, err := parseRunArgs([]string{"--output", "x.tsv"}, ui); err == nil {
		t.Error("expected an error without --input")
	}
	if _, err := parseRunArgs([]string{"--input", "x.txt"}, ui); err == nil {
		t.Error("expected an error without --output")
	}
}

func TestParseRunArgsRejectsUnknownPosMode(t *testing.T) {
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	_, err := parseRunArgs([]string{"--input", "x", "--output", "y", "--pos", "neural"}, ui)
	if err == nil {
		t.Fatal("expected an error for an unknown pos mode")
	}
}
