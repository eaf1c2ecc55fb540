package table

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [][]string
		wantErr string
	}{
		{
			name:  "basic",
			input: "Name,Age\nAlice,30\nBob,25\n",
			want:  [][]string{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}},
		},
		{
			name:  "bom stripped",
			input: "\ufeffName,Age\nAlice,30\n",
			want:  [][]string{{"Name", "Age"}, {"Alice", "30"}},
		},
		{
			name:  "cells trimmed",
			input: " Name , Age \n Alice , 30 \n",
			want:  [][]string{{"Name", "Age"}, {"Alice", "30"}},
		},
		{
			name:  "short rows padded to header width",
			input: "a,b,c\nx\n",
			want:  [][]string{{"a", "b", "c"}, {"x", "", ""}},
		},
		{
			name:  "long rows truncated to header width",
			input: "a,b\nx,y,z,w\n",
			want:  [][]string{{"a", "b"}, {"x", "y"}},
		},
		{
			name:  "quoted field keeps comma and pipe",
			input: "a,b\n\"1,2\",p|q\n",
			want:  [][]string{{"a", "b"}, {"1,2", "p|q"}},
		},
		{
			name:  "header only",
			input: "a,b\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: "CSV file is empty",
		},
		{
			name:    "bom only",
			input:   "\ufeff",
			wantErr: "CSV file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ReadCSV() error = nil, want %q", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("ReadCSV() error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if !reflect.DeepEqual(got.Rows, tt.want) {
				t.Errorf("ReadCSV() rows = %v, want %v", got.Rows, tt.want)
			}
		})
	}
}

func TestRenderCSV(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"Name", "Age"}, {"Alice", "30"}}}
	got, err := RenderCSV(tbl)
	if err != nil {
		t.Fatalf("RenderCSV() error = %v", err)
	}
	want := "Name,Age\nAlice,30\n"
	if got != want {
		t.Errorf("RenderCSV() = %q, want %q", got, want)
	}
}

func TestRenderCSVRaggedRows(t *testing.T) {
	// Markdown-parsed rows keep their width; the writer must not
	// normalize them.
	tbl := &Table{Rows: [][]string{{"a", "b"}, {"1"}, {"x", "y", "z"}}}
	got, err := RenderCSV(tbl)
	if err != nil {
		t.Fatalf("RenderCSV() error = %v", err)
	}
	want := "a,b\n1\nx,y,z\n"
	if got != want {
		t.Errorf("RenderCSV() = %q, want %q", got, want)
	}
}

func TestWriteCSV(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}}}

	var b strings.Builder
	rows, err := WriteCSV(&b, tbl)
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if rows != 3 {
		t.Errorf("WriteCSV() rows = %d, want 3", rows)
	}
	if !strings.HasPrefix(b.String(), "\ufeff") {
		t.Error("WriteCSV() output missing BOM prefix")
	}
	if got, want := strings.TrimPrefix(b.String(), "\ufeff"), "Name,Age\nAlice,30\nBob,25\n"; got != want {
		t.Errorf("WriteCSV() = %q, want %q", got, want)
	}
}

func TestWriteCSVReadCSVRoundTrip(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"Name", "Note"}, {"Alice", "likes, commas"}, {"Bob", "a|b"}}}

	var b strings.Builder
	if _, err := WriteCSV(&b, tbl); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	back, err := ReadCSV(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if !reflect.DeepEqual(back.Rows, tbl.Rows) {
		t.Errorf("round trip = %v, want %v", back.Rows, tbl.Rows)
	}
}
