package main

import "testing"

func TestPrettyJSON(t *testing.T) {
	got := prettyJSON([]byte(`{"status":"ok"}`))
	want := "{\n  \"status\": \"ok\"\n}"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPrettyJSONPassesThroughInvalidPayload(t *testing.T) {
	if got := prettyJSON([]byte("not json")); got != "not json" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}
