package f1000

import (
	"bytes"
	"io"
	"regexp"
	"sync"
	"testing"
	"time"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

func renderBytes(t *testing.T, b Bundle, v Variant) []byte {
	t.Helper()
	r, err := Render(b, v)
	if err != nil {
		t.Fatalf("Render(%s): %v", v, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	return data
}

func TestRender_TwoPagePDF(t *testing.T) {
	for _, v := range []Variant{Full, Reduced} {
		t.Run(v.String(), func(t *testing.T) {
			data := renderBytes(t, muellerBundle(), v)
			if !bytes.HasPrefix(data, []byte("%PDF")) {
				t.Fatalf("missing %%PDF header: %q", data[:8])
			}
			if n := len(pageObject.FindAll(data, -1)); n != 2 {
				t.Errorf("expected 2 pages, found %d", n)
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	b := muellerBundle()
	b.Report["erstellt_am"] = "2024-06-02"
	first := renderBytes(t, b, Full)
	second := renderBytes(t, b, Full)
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different output")
	}
}

func TestRender_EmptyBundle(t *testing.T) {
	data := renderBytes(t, Bundle{}, Reduced)
	if n := len(pageObject.FindAll(data, -1)); n != 2 {
		t.Errorf("expected 2 pages for an empty bundle, found %d", n)
	}
}

func TestGenerateFullAndReducedDiffer(t *testing.T) {
	full, err := GenerateFull(muellerBundle())
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := GenerateReduced(muellerBundle())
	if err != nil {
		t.Fatal(err)
	}
	if full.Size() == 0 || reduced.Size() == 0 {
		t.Fatal("empty document")
	}
	a, _ := io.ReadAll(full)
	b, _ := io.ReadAll(reduced)
	if bytes.Equal(a, b) {
		t.Error("variants should not render identically")
	}
}

func TestRender_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v Variant) {
			defer wg.Done()
			if _, err := Render(muellerBundle(), v); err != nil {
				errs <- err
			}
		}(Variant(i % 2))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent render: %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", Full, false},
		{"uv", Full, false},
		{"KK", Reduced, false},
		{"reduced", Reduced, false},
		{"pdf", Full, true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestDocumentDate(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	day := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"date", "2024-06-02", day},
		{"timestamp", "2024-06-02T10:00:00", day},
		{"space separated", "2024-06-02 10:00", day},
		{"missing", nil, epoch},
		{"german", "02.06.2024", epoch},
		{"trailing junk", "2024-06-02x", epoch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{}
			if tt.in != nil {
				r["erstellt_am"] = tt.in
			}
			if got := documentDate(r); !got.Equal(tt.want) {
				t.Errorf("documentDate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDocumentDate_MatchesSignatureDate(t *testing.T) {
	b := muellerBundle()
	b.Report["erstellt_am"] = "2024-06-02T10:00:00"
	printed := value(t, Layout(b, Full)[0], "report.erstellt_am")
	if stamped := documentDate(b.Report).Format(displayDate); stamped != printed {
		t.Errorf("pdf creation date %s differs from printed date %s", stamped, printed)
	}
}
