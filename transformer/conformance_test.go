package transformer_test

import (
	"bytes"
	"testing"

	"github.com/tengyifei/llcpptransformer/samples"
	"github.com/tengyifei/llcpptransformer/transformer"
)

// poisonBuffer returns a destination buffer filled with a sentinel, so a
// fixture mismatch also catches padding the walker forgot to zero.
func poisonBuffer() []byte {
	buf := make([]byte, transformer.MaxMessageBytes)
	for i := range buf {
		buf[i] = 0xcc
	}
	return buf
}

func TestFixtureCorpus(t *testing.T) {
	for _, p := range samples.Pairs() {
		t.Run(p.Name+"/v1-to-old", func(t *testing.T) {
			dst := poisonBuffer()
			n, err := transformer.Transform(transformer.V1ToOld, p.V1, p.V1Bytes, dst)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if int(n) != len(p.OldBytes) {
				t.Errorf("length: got %d, want %d", n, len(p.OldBytes))
			}
			if !bytes.Equal(dst[:n], p.OldBytes) {
				t.Errorf("output mismatch:\n got  % x\n want % x", dst[:n], p.OldBytes)
			}
		})

		t.Run(p.Name+"/old-to-v1", func(t *testing.T) {
			dst := poisonBuffer()
			n, err := transformer.Transform(transformer.OldToV1, p.Old, p.OldBytes, dst)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if int(n) != len(p.V1Bytes) {
				t.Errorf("length: got %d, want %d", n, len(p.V1Bytes))
			}
			if !bytes.Equal(dst[:n], p.V1Bytes) {
				t.Errorf("output mismatch:\n got  % x\n want % x", dst[:n], p.V1Bytes)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range samples.Pairs() {
		t.Run(p.Name, func(t *testing.T) {
			mid := poisonBuffer()
			n, err := transformer.Transform(transformer.V1ToOld, p.V1, p.V1Bytes, mid)
			if err != nil {
				t.Fatalf("v1-to-old: %v", err)
			}

			back := poisonBuffer()
			m, err := transformer.Transform(transformer.OldToV1, p.Old, mid[:n], back)
			if err != nil {
				t.Fatalf("old-to-v1: %v", err)
			}
			if !bytes.Equal(back[:m], p.V1Bytes) {
				t.Errorf("round trip diverged:\n got  % x\n want % x", back[:m], p.V1Bytes)
			}
		})
	}
}
