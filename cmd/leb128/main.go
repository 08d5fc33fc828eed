package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-instrument/binary"
	"github.com/wippyai/wasm-instrument/hookgen"
	"github.com/wippyai/wasm-instrument/leb128"
)

func main() {
	var (
		decodeHex   = flag.String("decode", "", "Hex bytes to decode (e.g. \"ac 02\")")
		encodeVal   = flag.String("encode", "", "Value to encode")
		patchFile   = flag.String("patch", "", "File to patch in place")
		offset      = flag.Int("offset", 0, "Byte offset of the field to patch")
		value       = flag.String("value", "", "New value for -patch")
		widthName   = flag.String("width", "u32", "Integer width: u32, i32 or i64")
		byteCount   = flag.Int("len", 0, "Minimum encoded length for -encode")
		hooks       = flag.Bool("hooks", false, "Generate JavaScript hook stubs for the numeric instructions")
		output      = flag.String("o", "", "Output file for -hooks and -patch (default: stdout / patch in place)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer log.Sync() //nolint:errcheck // best effort on exit
	leb128.SetLogger(log.Named("leb128"))
	binary.SetLogger(log.Named("binary"))

	w, err := leb128.ParseWidth(*widthName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = fmt.Errorf("interactive mode needs a terminal")
			break
		}
		err = runInteractive(w)
	case *decodeHex != "":
		err = runDecode(*decodeHex, w)
	case *encodeVal != "":
		err = runEncode(*encodeVal, w, *byteCount)
	case *patchFile != "":
		err = runPatch(log, *patchFile, *offset, *value, w, *output)
	case *hooks:
		err = runHooks(*output)
	default:
		fmt.Fprintln(os.Stderr, "Usage: leb128 -decode <hex> [-width u32|i32|i64]")
		fmt.Fprintln(os.Stderr, "       leb128 -encode <value> [-width ...] [-len N]")
		fmt.Fprintln(os.Stderr, "       leb128 -patch <file> -offset N -value V [-width ...] [-o out]")
		fmt.Fprintln(os.Stderr, "       leb128 -hooks [-o hooks.js]")
		fmt.Fprintln(os.Stderr, "       leb128 -i  (interactive mode)")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDecode(hexStr string, w leb128.Width) error {
	data, err := parseHex(hexStr)
	if err != nil {
		return err
	}
	values, err := decodeAll(data, w)
	pos := 0
	for _, v := range values {
		fmt.Printf("%6d  %-30s %s (%d bytes)\n", pos, formatHex(data[pos:pos+v.byteCount]), v.text, v.byteCount)
		pos += v.byteCount
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", w, err)
	}
	return nil
}

func runEncode(value string, w leb128.Width, byteCount int) error {
	data, err := encode(value, w, byteCount)
	if err != nil {
		return fmt.Errorf("encode %s: %w", w, err)
	}
	fmt.Printf("%s (%d bytes)\n", formatHex(data), len(data))
	return nil
}

func runPatch(log *zap.Logger, file string, offset int, value string, w leb128.Width, output string) error {
	if value == "" {
		return fmt.Errorf("-patch requires -value")
	}
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	old, err := patch(data, offset, value, w)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	if output == "" {
		output = file
	}
	if err := os.WriteFile(output, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	log.Info("patched",
		zap.String("file", output),
		zap.Int("offset", offset),
		zap.String("old", old.text),
		zap.String("new", value),
		zap.Int("bytes", old.byteCount),
	)
	fmt.Printf("%s @%d: %s -> %s (%d bytes)\n", output, offset, old.text, value, old.byteCount)
	return nil
}

func runHooks(output string) error {
	var sb strings.Builder
	if err := hookgen.Generate(&sb, hookgen.Catalog()); err != nil {
		return fmt.Errorf("generate hooks: %w", err)
	}
	if output == "" {
		fmt.Print(sb.String())
		return nil
	}
	if err := os.WriteFile(output, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write hooks: %w", err)
	}
	return nil
}
