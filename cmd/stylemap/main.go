// Package main is the entry point for the stylemap daemon.
//
// The daemon reads newline-delimited JSON requests on stdin and writes
// responses on stdout: style definitions and base-font changes mutate
// the shared registry, span arrays are decoded and applied onto a
// terminal line builder, and width-measurement batches are answered in
// kind. The config file is watched for live theme reloads.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/stylemap/internal/config"
	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/logging"
	"github.com/dshills/stylemap/internal/protocol"
	"github.com/dshills/stylemap/internal/render/termline"
	"github.com/dshills/stylemap/internal/style"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", defaultConfigPath(), "path to the stylemap config file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	log := logging.New(logging.ParseLevel(level), os.Stderr).
		WithField("session", uuid.NewString())

	backend := defaultBackend(cfg)
	base, ok := backend.ResolveFont(cfg.Font.Family, 0, font.NativeWeight(400), cfg.Font.Size)
	if !ok {
		log.Warn("configured font %q unavailable; styles resolve without fonts", cfg.Font.Family)
	}

	factory := termline.NewFactory(backend)
	shared := style.NewShared(style.Options{
		Reserved:          cfg.Styles.Reserved,
		DefaultForeground: cfg.ForegroundColor(),
		BaseFont:          base,
		Resolver:          font.NewResolver(backend),
		Factory:           factory,
		Log:               log,
	})

	watcher, err := config.NewWatcher(*configPath, func(cfg config.Config) {
		shared.SetDefaultForeground(cfg.ForegroundColor())
		if f, ok := backend.ResolveFont(cfg.Font.Family, 0, font.NativeWeight(400), cfg.Font.Size); ok {
			shared.UpdateBaseFont(f)
		}
	}, log)
	if err != nil {
		log.Warn("config watching disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		os.Stdin.Close()
	}()

	d := &daemon{
		shared:  shared,
		factory: factory,
		backend: backend,
		log:     log,
		out:     os.Stdout,
	}
	d.serve(os.Stdin)

	log.Info("shutting down")
	return 0
}

// daemon holds the request-loop state.
type daemon struct {
	shared  *style.SharedRegistry
	factory *termline.Factory
	backend *font.StaticBackend
	log     *logging.Logger
	out     *os.File
}

func (d *daemon) serve(in *os.File) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		d.dispatch(line)
	}
	if err := scanner.Err(); err != nil {
		d.log.Error("reading stdin: %v", err)
	}
}

func (d *daemon) dispatch(line []byte) {
	doc := gjson.ParseBytes(line)
	method := doc.Get("method").String()
	params := []byte(doc.Get("params").Raw)

	switch method {
	case "def_style":
		def, err := protocol.ParseStyleDef(params)
		if err != nil {
			d.log.Warn("def_style: %v", err)
			return
		}
		d.shared.Define(def)

	case "set_spans":
		d.handleSetSpans(doc)

	case "measure_width":
		d.handleMeasureWidth(params)

	case "set_font":
		d.handleSetFont(doc)

	default:
		d.log.Warn("unknown method %q", method)
	}
}

// handleSetSpans decodes a line's style array, applies the spans onto
// a fresh terminal line, and reports the resulting width.
func (d *daemon) handleSetSpans(doc gjson.Result) {
	text := doc.Get("params.text").String()
	raw, err := protocol.ParseStyleArray([]byte(doc.Get("params.styles").Raw))
	if err != nil {
		d.log.Warn("set_spans: %v", err)
		return
	}

	spans := style.DecodeSpans(raw, text, d.log)
	b := d.factory.NewLine(text)
	d.shared.ApplySpans(spans, b)

	resp := []byte(`{"method":"spans_applied"}`)
	resp, _ = sjson.SetBytes(resp, "spans", len(spans))
	resp, _ = sjson.SetBytes(resp, "width", b.Measure())
	d.reply(resp)
}

func (d *daemon) handleMeasureWidth(params []byte) {
	reqs, err := protocol.ParseMeasureRequest(params)
	if err != nil {
		d.log.Warn("measure_width: %v", err)
		return
	}

	widths := d.shared.MeasureWidths(reqs)
	body, err := protocol.EncodeWidths(widths)
	if err != nil {
		d.log.Error("measure_width response: %v", err)
		return
	}

	resp := []byte(`{"method":"measured_widths"}`)
	resp, _ = sjson.SetRawBytes(resp, "result", body)
	d.reply(resp)
}

func (d *daemon) handleSetFont(doc gjson.Result) {
	family := doc.Get("params.family").String()
	size := doc.Get("params.size").Float()
	if family == "" || size <= 0 {
		d.log.Warn("set_font: missing family or size")
		return
	}

	// The static backend stands in for a system font catalog; make
	// sure the requested family exists in it before switching.
	installFamily(d.backend, family)
	f, ok := d.backend.ResolveFont(family, 0, font.NativeWeight(400), size)
	if !ok {
		d.log.Warn("set_font: %q unavailable", family)
		return
	}
	d.shared.UpdateBaseFont(f)
}

func (d *daemon) reply(resp []byte) {
	resp = append(resp, '\n')
	if _, err := d.out.Write(resp); err != nil {
		d.log.Error("writing response: %v", err)
	}
}

// defaultBackend builds the static font catalog for the configured
// family: regular and italic faces across the useful native weights.
func defaultBackend(cfg config.Config) *font.StaticBackend {
	b := font.NewStaticBackend()
	installFamily(b, cfg.Font.Family)
	return b
}

func installFamily(b *font.StaticBackend, family string) {
	for _, w := range []int{3, 5, 7, 9, 12} {
		b.Install(family, 0, w)
		b.Install(family, font.TraitItalic, w)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "stylemap.toml"
	}
	return dir + "/stylemap/stylemap.toml"
}
