package main

import (
	"strconv"
	"testing"

	"github.com/dgallion1/docketprep/internal/config"
)

func TestConcurrencyFlagDefaultMatchesConfig(t *testing.T) {
	f := buildCmd.Flags().Lookup("concurrency")
	if f == nil {
		t.Fatal("concurrency flag not registered")
	}
	want := strconv.Itoa(config.Default().Concurrency)
	if f.DefValue != want {
		t.Errorf("flag default %s diverged from config default %s", f.DefValue, want)
	}
}
