// Command fitdump decodes a FIT file (or a live serial device) and
// prints its messages, either a full per-field dump or a per-message-kind
// summary.
package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/aldas/go-fit-decoder"
	"github.com/aldas/go-fit-decoder/serialsource"
)

// fileConfig is the optional TOML config file shape, for pinning
// device/baud/resolve-enums defaults without repeating flags.
type fileConfig struct {
	Device       string `toml:"device"`
	Baud         int    `toml:"baud"`
	ResolveEnums bool   `toml:"resolve_enums"`
}

func main() {
	filePath := flag.String("file", "", "path to a .fit file to decode")
	device := flag.String("device", "", "path to a serial-attached device to read instead of -file")
	baud := flag.Int("baud", 115200, "device baud rate")
	configPath := flag.String("config", "", "path to a TOML config file overriding device/baud/resolve-enums defaults")
	rawOutput := flag.Bool("raw", false, "print every decoded field instead of just a summary")
	resolveEnums := flag.Bool("resolve-enums", false, "resolve enum-valued fields to their symbolic variant name")
	useZstd := flag.Bool("zstd", false, "the input is zstd-compressed")
	useLZ4 := flag.Bool("lz4", false, "the input is lz4-compressed")
	useGzip := flag.Bool("gzip", false, "the input is gzip-compressed")
	flag.Parse()

	cfg := fileConfig{Device: *device, Baud: *baud, ResolveEnums: *resolveEnums}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatalf("fitdump: reading config: %v", err)
		}
	}

	data, err := readInput(*filePath, cfg.Device, cfg.Baud)
	if err != nil {
		log.Fatalf("fitdump: %v", err)
	}

	data, err = decompress(data, *useZstd, *useLZ4, *useGzip)
	if err != nil {
		log.Fatalf("fitdump: decompress: %v", err)
	}

	decoder := fit.NewDecoderWithConfig(fit.DecoderConfig{
		ResolveEnums: cfg.ResolveEnums,
	})

	messages, err := decoder.Decode(data)
	if err != nil {
		log.Fatalf("fitdump: decode: %v", err)
	}

	if *rawOutput {
		printRaw(messages)
		return
	}
	printSummary(messages)
}

func readInput(filePath, device string, baud int) ([]byte, error) {
	switch {
	case filePath != "":
		return os.ReadFile(filePath)
	case device != "":
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return serialsource.Open(ctx, serialsource.Config{
			Name:        device,
			Baud:        baud,
			ReadTimeout: 100 * time.Millisecond,
			IdleTimeout: 2 * time.Second,
		})
	default:
		return io.ReadAll(os.Stdin)
	}
}

func decompress(data []byte, useZstd, useLZ4, useGzip bool) ([]byte, error) {
	switch {
	case useZstd:
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	case useLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	case useGzip:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	default:
		return data, nil
	}
}

func printRaw(messages []fit.DataMessage) {
	enc := json.NewEncoder(os.Stdout)
	for _, m := range messages {
		fields := make(map[string]interface{}, len(m.Fields))
		for _, f := range m.Fields {
			fields[f.Kind.String()] = fieldJSON(f)
		}
		_ = enc.Encode(map[string]interface{}{
			"message": m.Kind.String(),
			"fields":  fields,
		})
	}
}

func fieldJSON(f fit.DataField) interface{} {
	v := f.Value()
	if f.EnumName != "" {
		return f.EnumName
	}
	switch v.Kind {
	case fit.ValueUint:
		return v.Uint
	case fit.ValueInt:
		return v.Int
	case fit.ValueFloat:
		return v.Float
	case fit.ValueString:
		return v.Str
	case fit.ValueBytes:
		return v.Bytes
	default:
		return nil
	}
}

func printSummary(messages []fit.DataMessage) {
	counts := map[string]int{}
	for _, m := range messages {
		counts[m.Kind.String()]++
	}
	fmt.Printf("# decoded %d messages\n", len(messages))
	for kind, n := range counts {
		fmt.Printf("%-20s %d\n", kind, n)
	}
}
