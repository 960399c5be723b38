package conftext

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/joshuapare/confkit/pkg/conftree"
)

// generate builds a sectioned document with sections per level down to
// depth, each holding leaves assignments.
func generate(sections, depth, leaves int) []byte {
	var buf bytes.Buffer
	var emit func(prefix string, level int)
	emit = func(prefix string, level int) {
		for i := range sections {
			name := fmt.Sprintf("%ssection%d", prefix, i)
			fmt.Fprintf(&buf, "[%s]\n", name)
			for j := range leaves {
				fmt.Fprintf(&buf, "key%d = value %d of %s\n", j, j, name)
			}
			buf.WriteString("\n")
			if level < depth {
				emit(name+SectionSeparator, level+1)
			}
		}
	}
	emit("", 1)
	return buf.Bytes()
}

func benchmarkDecode(b *testing.B, data []byte) {
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if err := Decode(data, conftree.NewNode("root"), DecodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecode_Flat benchmarks many sections of one level.
func BenchmarkDecode_Flat(b *testing.B) { benchmarkDecode(b, generate(500, 1, 10)) }

// BenchmarkDecode_Nested benchmarks a tree three levels deep.
func BenchmarkDecode_Nested(b *testing.B) { benchmarkDecode(b, generate(10, 3, 10)) }

// BenchmarkDecode_WideSections benchmarks few sections with many leaves.
func BenchmarkDecode_WideSections(b *testing.B) { benchmarkDecode(b, generate(5, 1, 1000)) }

func BenchmarkEncode(b *testing.B) {
	root := conftree.NewNode("root")
	if err := Decode(generate(10, 3, 10), root, DecodeOptions{}); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := Encode(root, EncodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func TestGenerate_Decodes(t *testing.T) {
	root := conftree.NewNode("root")
	if err := Decode(generate(2, 2, 3), root, DecodeOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := root.NodeCount(); got != 2 {
		t.Fatalf("NodeCount = %d, want 2", got)
	}
	if got := root.Node("section1").Node("section0").LeafCount(); got != 3 {
		t.Fatalf("LeafCount = %d, want 3", got)
	}
}
