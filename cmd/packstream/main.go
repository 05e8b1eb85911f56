// packstream - PackStream codec CLI tool
//
// Usage:
//
//	packstream decode [--hex] [file]   Decode PackStream values to JSON lines
//	packstream encode [--hex] [file]   Encode JSON lines to PackStream
//	packstream version                 Print version info
//
// Input is read from the file argument, or stdin when no file is given.
// With --hex, decode accepts hex digits (whitespace ignored) and encode
// emits hex instead of raw bytes.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/graphwire/packstream/packstream"
)

const version = "0.1.0"

func main() {
	hexMode := pflag.Bool("hex", false, "treat decode input / encode output as hex")
	pflag.Usage = printUsage
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	if len(args) > 1 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch args[0] {
	case "decode":
		if err := runDecode(input, *hexMode); err != nil {
			fatal("decode: %v", err)
		}
	case "encode":
		if err := runEncode(input, *hexMode); err != nil {
			fatal("encode: %v", err)
		}
	case "version":
		fmt.Printf("packstream %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "packstream: unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// runDecode reads a stream of PackStream values and prints one JSON line
// per value.
func runDecode(input io.Reader, hexMode bool) error {
	data, err := io.ReadAll(input)
	if err != nil {
		return err
	}
	if hexMode {
		data, err = decodeHex(data)
		if err != nil {
			return err
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	r := bytes.NewReader(data)
	for r.Len() > 0 {
		v, err := packstream.DecodeValue[packstream.GenericStruct](r)
		if err != nil {
			return err
		}
		line, err := packstream.ToJSON(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", line)
	}
	return nil
}

// runEncode reads JSON values, one per line, and writes their PackStream
// encoding.
func runEncode(input io.Reader, hexMode bool) error {
	var buf bytes.Buffer
	dec := json.NewDecoder(input)
	dec.UseNumber()
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		v, err := packstream.FromJSON(raw)
		if err != nil {
			return err
		}
		if _, err := v.Encode(&buf); err != nil {
			return err
		}
	}

	if hexMode {
		fmt.Println(hex.EncodeToString(buf.Bytes()))
		return nil
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}

// decodeHex strips whitespace and decodes hex digits.
func decodeHex(data []byte) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, string(data))
	return hex.DecodeString(clean)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `packstream - PackStream codec tool

Usage:
  packstream decode [--hex] [file]   Decode PackStream values to JSON lines
  packstream encode [--hex] [file]   Encode JSON lines to PackStream
  packstream version                 Print version info

If no file is given (or the file is "-"), input is read from stdin.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "packstream: "+format+"\n", args...)
	os.Exit(1)
}
