// Package present renders registry listings for the launcher frontend.
//
// The default format is the launcher's XML item list; JSON (script-filter
// style) and a tab-aligned table are also available. Rendering never touches
// the registries: callers pass in a listing they have already taken.
package present

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Kind selects which registry a listing came from.
type Kind int

const (
	KindLocal Kind = iota
	KindRemote
)

// Output formats accepted by Render.
const (
	FormatXML   = "xml"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Item is one row of a listing.
type Item struct {
	UID      string
	Arg      string
	Valid    bool
	Title    string
	Subtitle string
	Icon     string
}

// Items projects a listing into display items. An empty listing yields a
// single invalid placeholder explaining how to add templates.
func Items(kind Kind, entries []string, icon string) []Item {
	if len(entries) == 0 {
		return []Item{placeholder(kind, icon)}
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		pos := strconv.Itoa(i)
		item := Item{
			UID:   pos,
			Arg:   pos,
			Valid: true,
			Title: entry,
			Icon:  icon,
		}
		if kind == KindRemote {
			item.Title = path.Base(entry)
			item.Subtitle = entry
		}
		items = append(items, item)
	}
	return items
}

func placeholder(kind Kind, icon string) Item {
	item := Item{
		UID:   "none",
		Arg:   "none",
		Valid: false,
		Icon:  icon,
	}
	switch kind {
	case KindRemote:
		item.Title = "List templates (rtml)"
		item.Subtitle = "You need to add some remote templates, first"
	default:
		item.Title = "List templates (tml)"
		item.Subtitle = "You need to add some local templates, first"
	}
	return item
}

// Render writes items to w in the given format.
func Render(w io.Writer, format string, items []Item) error {
	switch strings.ToLower(format) {
	case "", FormatXML:
		return renderXML(w, items)
	case FormatJSON:
		return renderJSON(w, items)
	case FormatTable:
		return renderTable(w, items)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatXML, FormatJSON, FormatTable)
	}
}

type xmlDocument struct {
	XMLName xml.Name  `xml:"items"`
	Items   []xmlItem `xml:"item"`
}

type xmlItem struct {
	UID      string `xml:"uuid,attr"`
	Arg      string `xml:"arg,attr"`
	Valid    string `xml:"valid,attr"`
	Title    cdata  `xml:"title"`
	Subtitle *cdata `xml:"subtitle,omitempty"`
	Icon     string `xml:"icon"`
}

type cdata struct {
	Value string `xml:",cdata"`
}

func renderXML(w io.Writer, items []Item) error {
	doc := xmlDocument{Items: make([]xmlItem, 0, len(items))}
	for _, it := range items {
		x := xmlItem{
			UID:   it.UID,
			Arg:   it.Arg,
			Valid: yesNo(it.Valid),
			Title: cdata{it.Title},
			Icon:  it.Icon,
		}
		if it.Subtitle != "" {
			x.Subtitle = &cdata{it.Subtitle}
		}
		doc.Items = append(doc.Items, x)
	}

	if _, err := io.WriteString(w, "<?xml version='1.0'?>"); err != nil {
		return err
	}
	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type jsonDocument struct {
	Items []jsonItem `json:"items"`
}

type jsonItem struct {
	UID      string   `json:"uid"`
	Arg      string   `json:"arg"`
	Valid    bool     `json:"valid"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Icon     jsonIcon `json:"icon"`
}

type jsonIcon struct {
	Path string `json:"path"`
}

func renderJSON(w io.Writer, items []Item) error {
	doc := jsonDocument{Items: make([]jsonItem, 0, len(items))}
	for _, it := range items {
		doc.Items = append(doc.Items, jsonItem{
			UID:      it.UID,
			Arg:      it.Arg,
			Valid:    it.Valid,
			Title:    it.Title,
			Subtitle: it.Subtitle,
			Icon:     jsonIcon{Path: it.Icon},
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderTable(w io.Writer, items []Item) error {
	if len(items) == 1 && !items[0].Valid {
		_, err := fmt.Fprintln(w, items[0].Subtitle)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSOURCE")
	for _, it := range items {
		source := it.Subtitle
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Arg, it.Title, source)
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
