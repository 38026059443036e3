package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tengyifei/llcpptransformer/samples"
	"github.com/tengyifei/llcpptransformer/transformer"
)

func main() {
	var (
		typeName    = flag.String("type", "", "Sample type to transform (see -list)")
		dirName     = flag.String("dir", "v1-to-old", "Transformation direction: v1-to-old or old-to-v1")
		hexInput    = flag.String("hex", "", "Encoded message as hex (defaults to the sample fixture)")
		inFile      = flag.String("in", "", "File containing the encoded message as hex")
		list        = flag.Bool("list", false, "List sample types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		transformer.SetLogger(logger)
	}

	if *list {
		listPairs()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: transform -type <name> [-dir v1-to-old|old-to-v1] [-hex bytes]")
		fmt.Fprintln(os.Stderr, "       transform -list")
		fmt.Fprintln(os.Stderr, "       transform -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*typeName, *dirName, *hexInput, *inFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listPairs() {
	fmt.Println("Sample types:")
	for _, p := range samples.Pairs() {
		fmt.Printf("  %-28s old %3d bytes, v1 %3d bytes\n", p.Name, len(p.OldBytes), len(p.V1Bytes))
	}
}

func run(typeName, dirName, hexInput, inFile string) error {
	pair, err := findPair(typeName)
	if err != nil {
		return err
	}
	direction, err := parseDirection(dirName)
	if err != nil {
		return err
	}

	root := pair.V1
	src := pair.V1Bytes
	if direction == transformer.OldToV1 {
		root = pair.Old
		src = pair.OldBytes
	}

	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		hexInput = string(data)
	}
	if hexInput != "" {
		if src, err = decodeHex(hexInput); err != nil {
			return fmt.Errorf("decode input: %w", err)
		}
	}

	dst := make([]byte, transformer.MaxMessageBytes)
	n, err := transformer.Transform(direction, root, src, dst)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s: %d bytes in, %d bytes out\n\n", pair.Name, direction, len(src), n)
	fmt.Print(hexDump(dst[:n]))
	return nil
}

func findPair(name string) (samples.Pair, error) {
	var names []string
	for _, p := range samples.Pairs() {
		if p.Name == name {
			return p, nil
		}
		names = append(names, p.Name)
	}
	return samples.Pair{}, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(names, ", "))
}

func parseDirection(name string) (transformer.Direction, error) {
	switch name {
	case "v1-to-old":
		return transformer.V1ToOld, nil
	case "old-to-v1":
		return transformer.OldToV1, nil
	case "none":
		return transformer.None, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", name)
	}
}

func decodeHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ',':
			return -1
		}
		return r
	}, s)
	clean = strings.ReplaceAll(clean, "0x", "")
	return hex.DecodeString(clean)
}

func hexDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%08x  ", off)
		for i := off; i < end; i++ {
			fmt.Fprintf(&b, "%02x ", data[i])
			if i-off == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
