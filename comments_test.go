package equipdocs

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanAnnotations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Annotations
	}{
		{
			name:  "unit and description from bracketed comment",
			input: "stiffness = 120.5  # [N/mm] axial stiffness\n",
			want: Annotations{
				"stiffness": {Unit: "N/mm", Description: "axial stiffness"},
			},
		},
		{
			name:  "comment without brackets keeps empty unit",
			input: "model = \"V201\"  # catalog designation\n",
			want: Annotations{
				"model": {Description: "catalog designation"},
			},
		},
		{
			name:  "line without comment yields no entry",
			input: "payload_mass = 12.0\n",
			want:  Annotations{},
		},
		{
			name:  "comment on its own line is ignored",
			input: "# [kg] moving mass\nmoving_mass = 0.5\n",
			want:  Annotations{},
		},
		{
			name:  "section headers are ignored",
			input: "[shaker]  # main section\nforce = 200  # [N] nominal force\n",
			want: Annotations{
				"force": {Unit: "N", Description: "nominal force"},
			},
		},
		{
			name:  "last occurrence wins for repeated keys",
			input: "limit = 1  # [mm] first\nlimit = 2  # [m] second\n",
			want: Annotations{
				"limit": {Unit: "m", Description: "second"},
			},
		},
		{
			name:  "bracketed unit with empty rest",
			input: "travel = 25.4  # [mm]\n",
			want: Annotations{
				"travel": {Unit: "mm", Description: ""},
			},
		},
		{
			name:  "value containing hash splits at first hash",
			input: "color = \"dark\" # paint # finish\n",
			want: Annotations{
				"color": {Description: "paint # finish"},
			},
		},
		{
			name:  "leading whitespace before key",
			input: "   displacement_pk_pk = 50.8  # [mm] peak to peak\n",
			want: Annotations{
				"displacement_pk_pk": {Unit: "mm", Description: "peak to peak"},
			},
		},
		{
			name:  "whitespace around comment is trimmed",
			input: "freq = 5  #   [Hz]   lower bound   \n",
			want: Annotations{
				"freq": {Unit: "Hz", Description: "lower bound"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanAnnotations(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d annotations, want %d: %#v", len(got), len(tt.want), got)
			}
			for key, want := range tt.want {
				gotAnn, ok := got[key]
				if !ok {
					t.Fatalf("missing annotation for %q", key)
				}
				if gotAnn != want {
					t.Errorf("annotation for %q = %+v, want %+v", key, gotAnn, want)
				}
			}
		})
	}
}

func TestScanAnnotationsNoSpuriousEntries(t *testing.T) {
	t.Parallel()

	input := "[limits]\nupper = 10  # [g] acceleration cap\nlower = 1\n"
	got, err := ScanAnnotations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := got["lower"]; ok {
		t.Error("key without trailing comment must not appear in annotations")
	}
	if _, ok := got["limits"]; ok {
		t.Error("section name must not appear in annotations")
	}
}

func TestScanAnnotationsFile(t *testing.T) {
	t.Run("missing file returns ErrCommentScan", func(t *testing.T) {
		_, err := ScanAnnotationsFile(filepath.Join(t.TempDir(), "absent.toml"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, ErrCommentScan) {
			t.Errorf("error = %v, want ErrCommentScan", err)
		}
	})

	t.Run("reads annotations from disk", func(t *testing.T) {
		path := writeTempFile(t, "record.toml", "mass = 2.5  # [kg] armature mass\n")

		got, err := ScanAnnotationsFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Annotation{Unit: "kg", Description: "armature mass"}
		if got["mass"] != want {
			t.Errorf("annotation = %+v, want %+v", got["mass"], want)
		}
	})
}
