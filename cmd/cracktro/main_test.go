package main

import "testing"

var TestRequestedDriverResolves = []struct {
	Requested string
	TTY       bool
	Expect    string
}{
	{"term", true, "term"},
	{"term", false, "term"}, // off a tty the terminal driver still renders at the fallback geometry
	{"sim", true, "sim"},
	{"sim", false, "sim"},
	{"auto", true, "term"},
	{"auto", false, "sim"},
	{"spi", true, ""},
	{"", false, ""},
}

func TestResolveDriver(t *testing.T) {
	for _, v := range TestRequestedDriverResolves {
		if got := resolveDriver(v.Requested, v.TTY); got != v.Expect {
			t.Fatalf("resolveDriver(%q, tty=%v) = %q, want %q", v.Requested, v.TTY, got, v.Expect)
		}
	}
}
