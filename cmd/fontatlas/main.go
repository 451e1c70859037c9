// Command fontatlas bakes a font into a packed grayscale atlas image plus a
// JSON file describing where each glyph lives.
//
// Usage:
//
//	fontatlas --font DejaVuSans.ttf --font-size 16 --range 32-126 --outname dejavu16
//
// writes dejavu16.png and dejavu16.json.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlasfile"
	"github.com/gogpu/glyphatlas/charset"
	"github.com/gogpu/glyphatlas/pack"
	"github.com/gogpu/glyphatlas/text"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "fontatlas: %v\n", err)
		}
		os.Exit(1)
	}
}

// rangeList collects repeated --range flags.
type rangeList []charset.Range

func (l *rangeList) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func (l *rangeList) Set(s string) error {
	r, err := charset.ParseRange(s)
	if err != nil {
		return err
	}
	*l = append(*l, r)
	return nil
}

// fileList collects repeated --used-chars-file flags.
type fileList []string

func (l *fileList) String() string { return strings.Join(*l, ",") }

func (l *fileList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// scriptList collects repeated --script flags as Unicode script tables.
type scriptList struct {
	names  []string
	tables []*unicode.RangeTable
}

func (l *scriptList) String() string { return strings.Join(l.names, ",") }

func (l *scriptList) Set(s string) error {
	t, ok := unicode.Scripts[s]
	if !ok {
		return fmt.Errorf("unknown script %q", s)
	}
	l.names = append(l.names, s)
	l.tables = append(l.tables, t)
	return nil
}

// config is the parsed command line.
type config struct {
	font      string
	fontIndex int
	charMap   string
	outName   string

	opts glyphatlas.Options
	png  atlasfile.PNGOptions

	ranges    rangeList
	usedFiles fileList
	scripts   scriptList

	verbose      bool
	ignoreErrors bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		opts: glyphatlas.DefaultOptions(),
		png:  atlasfile.DefaultPNGOptions(),
	}
	o := &cfg.opts
	o.FontSize = 0

	var (
		light, gray        bool
		debugColor, packer string
	)

	fs := flag.NewFlagSet("fontatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.font, "font", "", "path to the font file")
	fs.IntVar(&cfg.fontIndex, "font-index", 0, "font index in a font collection")
	fs.StringVar(&cfg.charMap, "charmap", "sfnt", "character map backend: "+strings.Join(text.CharMaps(), ", "))
	fs.Float64Var(&o.FontSize, "font-size", 0, "pixel size to render, eg 14")
	fs.IntVar(&o.Padding, "padding", o.Padding, "empty pixels around every glyph")
	fs.BoolVar(&light, "light", false, "use light glyph fitting")
	fs.IntVar(&o.AtlasWidth, "atlas-width", 0, "atlas width, 0 = automatic")
	fs.IntVar(&o.AtlasHeight, "atlas-height", 0, "atlas height, 0 = automatic")
	fs.IntVar(&o.MaxAtlasSize, "max-atlas-size", o.MaxAtlasSize, "largest automatic atlas side, 0 = unbounded")
	fs.IntVar(&o.GlyphHeight, "glyph-height", 0, "make all glyph cells this tall, 0 = natural height")
	fs.IntVar(&o.YOffset, "y-offset", 0, "baseline offset in pixels")
	fs.StringVar(&cfg.outName, "outname", "", "base name of the output, eg foo for foo.png and foo.json")
	fs.IntVar(&o.Oversample, "oversample", o.Oversample, "oversampling factor, 1 to 32")
	fs.IntVar(&o.AlphaMin, "alpha-min", o.AlphaMin, "coverage mapped to 0")
	fs.IntVar(&o.AlphaMax, "alpha-max", o.AlphaMax, "coverage mapped to 255")
	fs.Var(&cfg.ranges, "range", "code point range, eg 32-126 or 0x3041-0x3093 (repeatable)")
	fs.Var(&cfg.usedFiles, "used-chars-file", "UTF-8 file whose characters are added (repeatable)")
	fs.Var(&cfg.scripts, "script", "keep only used-chars-file characters of this Unicode script, eg Latin (repeatable)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log packing attempts and per-glyph details")
	fs.BoolVar(&o.ShowGrid, "show-grid", false, "mark each glyph cell with a pattern")
	fs.StringVar(&debugColor, "debug-color", "0xFFFFFF", "RGB of covered pixels in the PNG, 0xRRGGBB")
	fs.BoolVar(&gray, "gray", false, "write a single-channel grayscale PNG")
	fs.BoolVar(&cfg.ignoreErrors, "ignore-errors", false, "write output even when glyphs were cropped")
	fs.BoolVar(&o.ErrorOnCrop, "error-on-crop", false, "fail when a glyph does not fit its cell")
	fs.StringVar(&packer, "packer", pack.Skyline.String(), "rectangle packer: skyline or shelf")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if cfg.font == "" {
		return nil, errors.New("no font specified")
	}
	if o.FontSize <= 0 {
		return nil, errors.New("font size not specified")
	}
	if cfg.outName == "" {
		return nil, errors.New("outname not specified")
	}
	if len(cfg.ranges) == 0 && len(cfg.usedFiles) == 0 {
		return nil, errors.New("no ranges specified")
	}

	if light {
		o.RenderMode = text.RenderLight
	}
	h, err := pack.ParseHeuristic(packer)
	if err != nil {
		return nil, err
	}
	o.Heuristic = h

	c, err := atlasfile.ParseColor(debugColor)
	if err != nil {
		return nil, err
	}
	cfg.png.Color = c
	if gray {
		cfg.png.Format = atlasfile.FormatGray
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, hopts))
	}
	return slog.New(slog.NewJSONHandler(w, hopts))
}

// codePoints merges ranges and the characters of every used-chars file.
// With --script, file characters outside the named scripts are dropped;
// explicit ranges are always kept.
func (c *config) codePoints() ([]charset.Range, error) {
	var set, used charset.Set
	for _, r := range c.ranges {
		set.AddRange(r)
	}
	for _, path := range c.usedFiles {
		if err := used.ScanFile(path); err != nil {
			return nil, fmt.Errorf("can't read %s: %w", path, err)
		}
	}
	set.Add(used.Filter(c.scripts.tables...)...)
	return set.Ranges(), nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(stderr, cfg.verbose)
	glyphatlas.SetLogger(log)
	defer glyphatlas.SetLogger(nil)

	ranges, err := cfg.codePoints()
	if err != nil {
		return err
	}
	for _, r := range ranges {
		log.Debug("range", "start", r.Start, "end", r.End)
	}

	src, err := text.NewFontSourceFromFile(cfg.font,
		text.WithFontIndex(cfg.fontIndex),
		text.WithCharMap(cfg.charMap),
	)
	if err != nil {
		return err
	}
	defer src.Close()

	desc := src.Describe()
	log.Info("font", "path", cfg.font, "family", desc.Family, "index", src.Index(), "fonts", src.NumFonts())

	o := cfg.opts
	face := src.Face(o.FontSize, text.WithOversample(o.Oversample), text.WithRenderMode(o.RenderMode))
	metrics, err := face.Metrics()
	if err != nil {
		return err
	}

	res, err := glyphatlas.BakeRanges(face, ranges, o)
	var cropErr *glyphatlas.CropError
	switch {
	case errors.As(err, &cropErr) && cfg.ignoreErrors:
		log.Warn("writing output despite cropped glyphs", "crops", len(cropErr.Crops))
	case err != nil:
		return err
	}

	paths, err := atlasfile.WriteFiles(cfg.outName, res, cfg.png,
		atlasfile.WithFont(cfg.font, cfg.fontIndex),
		atlasfile.WithDescription(desc),
		atlasfile.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	log.Info("wrote atlas", "png", paths.PNG, "json", paths.JSON,
		"width", res.Surface.Width, "height", res.Surface.Height, "glyphs", len(res.Glyphs))
	return nil
}
