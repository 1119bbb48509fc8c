package utils

import (
	"bytes"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]int{"id": 1}); err != nil {
		t.Fatalf("PrintJSON error: %v", err)
	}

	want := "{\n\t\"id\": 1\n}\n"
	if buf.String() != want {
		t.Errorf("PrintJSON = %q, want %q", buf.String(), want)
	}
}

func TestPrintJSONUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, make(chan int)); err == nil {
		t.Fatal("expected error for unsupported value")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
