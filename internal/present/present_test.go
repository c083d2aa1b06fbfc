package present

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
)

// parsed mirrors the XML schema for assertions.
type parsed struct {
	Items []struct {
		UID      string `xml:"uuid,attr"`
		Arg      string `xml:"arg,attr"`
		Valid    string `xml:"valid,attr"`
		Title    string `xml:"title"`
		Subtitle string `xml:"subtitle"`
		Icon     string `xml:"icon"`
	} `xml:"item"`
}

func renderParsed(t *testing.T, items []Item) (string, parsed) {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, FormatXML, items); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	var doc parsed
	body := strings.TrimPrefix(out, "<?xml version='1.0'?>")
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	return out, doc
}

func TestEmptyLocalRendersPlaceholder(t *testing.T) {
	out, doc := renderParsed(t, Items(KindLocal, nil, "icon.png"))

	if !strings.HasPrefix(out, "<?xml version='1.0'?><items>") {
		t.Errorf("unexpected prefix: %q", out)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(doc.Items))
	}
	it := doc.Items[0]
	if it.Valid != "no" || it.UID != "none" || it.Arg != "none" {
		t.Errorf("placeholder attrs = %+v", it)
	}
	if it.Subtitle != "You need to add some local templates, first" {
		t.Errorf("subtitle = %q", it.Subtitle)
	}
}

func TestLocalItem(t *testing.T) {
	out, doc := renderParsed(t, Items(KindLocal, []string{"foo"}, "icon.png"))

	if len(doc.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(doc.Items))
	}
	it := doc.Items[0]
	if it.Title != "foo" || it.UID != "0" || it.Arg != "0" || it.Valid != "yes" {
		t.Errorf("item = %+v", it)
	}
	if it.Icon != "icon.png" {
		t.Errorf("icon = %q", it.Icon)
	}
	if strings.Contains(out, "<subtitle>") {
		t.Errorf("local items should have no subtitle: %q", out)
	}
	if !strings.Contains(out, "<title><![CDATA[foo]]></title>") {
		t.Errorf("title should be CDATA: %q", out)
	}
}

func TestRemoteItems(t *testing.T) {
	_, doc := renderParsed(t, Items(KindRemote, []string{"http://a/x.zip", "http://b/dir/y.txt"}, "icon.png"))

	if len(doc.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(doc.Items))
	}
	if doc.Items[1].Title != "y.txt" || doc.Items[1].Subtitle != "http://b/dir/y.txt" || doc.Items[1].Arg != "1" {
		t.Errorf("item = %+v", doc.Items[1])
	}
}

func TestEmptyRemotePlaceholder(t *testing.T) {
	items := Items(KindRemote, []string{}, "icon.png")
	if len(items) != 1 || items[0].Valid {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Title != "List templates (rtml)" {
		t.Errorf("title = %q", items[0].Title)
	}
}

func TestTitleWithMarkup(t *testing.T) {
	_, doc := renderParsed(t, Items(KindLocal, []string{"a<b>&]]>c"}, "icon.png"))
	if doc.Items[0].Title != "a<b>&]]>c" {
		t.Errorf("title = %q", doc.Items[0].Title)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, Items(KindLocal, []string{"foo"}, "icon.png")); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Items []struct {
			Arg   string `json:"arg"`
			Valid bool   `json:"valid"`
			Title string `json:"title"`
			Icon  struct {
				Path string `json:"path"`
			} `json:"icon"`
		} `json:"items"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(doc.Items) != 1 || doc.Items[0].Title != "foo" || !doc.Items[0].Valid || doc.Items[0].Icon.Path != "icon.png" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTable, Items(KindRemote, []string{"http://a/x.zip"}, "")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "TITLE") || !strings.Contains(out, "x.zip") || !strings.Contains(out, "http://a/x.zip") {
		t.Errorf("table = %q", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTable, Items(KindLocal, nil, "")); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "You need to add some local templates, first" {
		t.Errorf("table = %q", buf.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, "yaml", nil); err == nil {
		t.Error("expected error for unknown format")
	}
}
