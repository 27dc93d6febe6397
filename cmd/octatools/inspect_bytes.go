package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// runInspectBytes hex-dumps a byte range of a raw file, for debugging a
// field offset before it gets a named struct field in a codec.
func runInspectBytes(args []string) error {
	fs := pflag.NewFlagSet("inspect-bytes", pflag.ContinueOnError)
	offset := fs.Int64("offset", 0, "starting byte offset")
	length := fs.Int64("length", 256, "number of bytes to dump")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: %s", commands["inspect-bytes"].usage)
	}

	f, err := os.Open(rest[0])
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, *length)
	n, err := f.ReadAt(buf, *offset)
	if n == 0 && err != nil {
		return err
	}
	buf = buf[:n]

	for i := 0; i < len(buf); i += 16 {
		end := i + 16
		if end > len(buf) {
			end = len(buf)
		}
		row := buf[i:end]
		fmt.Printf("%08x  ", *offset+int64(i))
		for j := 0; j < 16; j++ {
			if j < len(row) {
				fmt.Printf("%02x ", row[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")
		for _, b := range row {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
	return nil
}
