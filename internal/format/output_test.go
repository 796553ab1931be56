package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type payload struct {
	DarkMode bool   `json:"darkMode"`
	Token    string `json:"token"`
	Count    int    `json:"count"`
	Tags     []string
}

func TestWriteJSON_Envelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Data: payload{DarkMode: true, Token: "dark"}}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected trailing newline")
	}
	var env map[string]any
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	data, ok := env["data"].(map[string]any)
	if !ok || data["token"] != "dark" || data["darkMode"] != true {
		t.Fatalf("unexpected envelope: %#v", env)
	}
	if _, ok := env["_hints"]; ok {
		t.Fatalf("empty hints must be omitted")
	}
}

func TestWriteJSON_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"a": 1}, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("unexpected pretty output: %q", buf.String())
	}
}

func TestWriteEDN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := Envelope{Data: payload{Token: "light", Count: 3, Tags: []string{"a", "b"}}}
	if err := Write(&buf, v, "EDN", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:data {:Tags ["a" "b"] :count 3 :darkMode false :token "light"}}` + "\n"
	if buf.String() != want {
		t.Fatalf("edn:\nwant %q\ngot  %q", want, buf.String())
	}
}

func TestWriteEDN_PrettyEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"xs": []any{}, "m": map[string]any{}, "n": nil}, true); err != nil {
		t.Fatal(err)
	}
	want := "{\n  :m {}\n  :n nil\n  :xs []\n}\n"
	if buf.String() != want {
		t.Fatalf("edn pretty:\nwant %q\ngot  %q", want, buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
