package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("unknown command: got %v", err)
	}
	if err := run(context.Background(), nil); err == nil {
		t.Fatal("missing command accepted")
	}
}

func TestRunInitAndResetMemory(t *testing.T) {
	ctx := context.Background()
	if err := run(ctx, []string{"init", "-store", "memory"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := run(ctx, []string{"reset", "-store", "memory"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestRunModelsAndScaleRel(t *testing.T) {
	ctx := context.Background()
	if err := run(ctx, []string{"models"}); err != nil {
		t.Fatalf("models: %v", err)
	}
	if err := run(ctx, []string{"models", "-v"}); err != nil {
		t.Fatalf("models -v: %v", err)
	}
	if err := run(ctx, []string{"scalerel", "-mag", "6.5", "-rake", "90"}); err != nil {
		t.Fatalf("scalerel: %v", err)
	}
}

func TestRunCoeffs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "table.txt")
	table := "imt  c1    c2\npga  1.0   2.0\n0.10 0.25  0.50\n0.20 0.75  1.50\n"
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		t.Fatalf("write table: %v", err)
	}

	if err := run(ctx, []string{"coeffs", "-file", path, "-imt", "pga"}); err != nil {
		t.Fatalf("coeffs pga: %v", err)
	}
	if err := run(ctx, []string{"coeffs", "-file", path, "-imt", "0.15", "-interpolate"}); err != nil {
		t.Fatalf("coeffs interpolated: %v", err)
	}
	if err := run(ctx, []string{"coeffs", "-file", path, "-imt", "0.15"}); err == nil {
		t.Fatal("exact lookup of an untabulated period succeeded")
	}
	if err := run(ctx, []string{"coeffs", "-imt", "pga"}); err == nil {
		t.Fatal("coeffs without -file accepted")
	}
}

func TestRunSampleFromConfig(t *testing.T) {
	ctx := context.Background()
	path := writeConfig(t, sampleJobYAML)

	if err := run(ctx, []string{"sample", "-store", "memory", "-config", path}); err != nil {
		t.Fatalf("sample: %v", err)
	}
	if err := run(ctx, []string{"sample", "-store", "memory"}); err == nil {
		t.Fatal("sample without -config accepted")
	}
	if err := run(ctx, []string{"gmf", "-store", "memory", "-config", path}); err == nil {
		t.Fatal("gmf without -event-set accepted")
	}
}
