package samples

import (
	"testing"

	"github.com/tengyifei/llcpptransformer/coding"
)

func TestPairsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Pairs() {
		t.Run(p.Name, func(t *testing.T) {
			if seen[p.Name] {
				t.Fatalf("duplicate pair name %q", p.Name)
			}
			seen[p.Name] = true

			if err := coding.Validate(p.Old); err != nil {
				t.Errorf("old table: %v", err)
			}
			if err := coding.Validate(p.V1); err != nil {
				t.Errorf("v1 table: %v", err)
			}
			if p.Old.Alt != p.V1 || p.V1.Alt != p.Old {
				t.Error("pair roots are not dialect twins")
			}
			if len(p.OldBytes) == 0 || len(p.V1Bytes) == 0 {
				t.Error("pair has an empty encoding")
			}
			if len(p.OldBytes)%8 != 0 && uint32(len(p.OldBytes)) != p.Old.InlineSize {
				t.Errorf("old encoding length %d is neither 8-aligned nor the inline size", len(p.OldBytes))
			}
			if len(p.V1Bytes)%8 != 0 {
				t.Errorf("v1 encoding length %d is not 8-aligned", len(p.V1Bytes))
			}
		})
	}
}

func TestFixtureLengthsCoverInlineSize(t *testing.T) {
	for _, p := range Pairs() {
		if uint32(len(p.OldBytes)) < p.Old.InlineSize {
			t.Errorf("%s: old encoding shorter than inline size", p.Name)
		}
		if uint32(len(p.V1Bytes)) < p.V1.InlineSize {
			t.Errorf("%s: v1 encoding shorter than inline size", p.Name)
		}
	}
}
