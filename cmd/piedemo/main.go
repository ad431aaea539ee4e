// Command piedemo demonstrates the piechart layout engine by rendering
// a chart to an SVG document or a PNG image. It plays the role of the
// rendering host: the library computes geometry, piedemo draws it.
//
// Usage:
//
//	piedemo -output chart.svg
//	piedemo -config chart.yaml -format png -output chart.png
//
// The optional YAML config describes the chart:
//
//	series: [59.54, 17.2, 9.59, 7.6, 5.53, 0.55]
//	labels: [Asia, Africa, Europe, N. America, S. America, Oceania]
//	startAngle: -60
//	labelPosition: outside
//	labelOffset: 35
//	padding: 20
//
// PNG output rasterizes the slice paths only; text rendering is left to
// SVG hosts.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/piechart"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML chart description (optional)")
		format     = flag.String("format", "svg", "output format: svg or png")
		output     = flag.String("output", "chart.svg", "output file")
		pixels     = flag.Int("pixels", 600, "PNG width in pixels (height follows the view box aspect)")
	)
	flag.Parse()

	spec := defaultSpec()
	if *configPath != "" {
		loaded, err := loadSpec(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		spec = loaded
	}

	layout, err := piechart.Compute(spec.Series, spec.options()...)
	if err != nil {
		log.Fatalf("Failed to compute layout: %v", err)
	}

	var data []byte
	switch *format {
	case "svg":
		data = []byte(renderSVG(layout, spec))
	case "png":
		data, err = renderPNG(layout, spec, *pixels)
		if err != nil {
			log.Fatalf("Failed to render PNG: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q (want svg or png)", *format)
	}

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Chart saved to %s (%d slices)\n", *output, len(layout.Slices))
}

// chartSpec is the YAML-facing chart description.
type chartSpec struct {
	Series        []float64 `yaml:"series"`
	Labels        []string  `yaml:"labels"`
	ViewboxWidth  float64   `yaml:"viewboxWidth"`
	ViewboxHeight float64   `yaml:"viewboxHeight"`
	Padding       float64   `yaml:"padding"`
	StartAngle    float64   `yaml:"startAngle"`
	Total         *float64  `yaml:"total"`
	ShowRatio     *float64  `yaml:"showRatio"`
	Donut         bool      `yaml:"donut"`
	DonutWidth    *float64  `yaml:"donutWidth"`
	ShowLabels    *bool     `yaml:"showLabels"`
	LabelPosition string    `yaml:"labelPosition"`
	LabelOffset   float64   `yaml:"labelOffset"`
}

// defaultSpec is the sample chart rendered when no config is given: the
// world population shares used throughout the library documentation.
func defaultSpec() chartSpec {
	return chartSpec{
		Series:        []float64{59.54, 17.2, 9.59, 7.6, 5.53, 0.55},
		Labels:        []string{"Asia", "Africa", "Europe", "N. America", "S. America", "Oceania"},
		ViewboxWidth:  600,
		ViewboxHeight: 400,
		Padding:       20,
		StartAngle:    -60,
		LabelPosition: "outside",
		LabelOffset:   35,
	}
}

func loadSpec(path string) (chartSpec, error) {
	spec := chartSpec{ViewboxWidth: 600, ViewboxHeight: 400}
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, errors.Wrap(err, "reading chart config")
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, errors.Wrapf(err, "parsing chart config %s", path)
	}
	return spec, nil
}

// options translates the YAML description into layout options.
func (s chartSpec) options() []piechart.Option {
	opts := []piechart.Option{
		piechart.WithViewBox(s.ViewboxWidth, s.ViewboxHeight),
		piechart.WithPadding(s.Padding),
		piechart.WithStartAngle(s.StartAngle),
		piechart.WithLabelOffset(s.LabelOffset),
	}
	switch s.LabelPosition {
	case "outside":
		opts = append(opts, piechart.WithLabelPosition(piechart.LabelOutside))
	case "center":
		opts = append(opts, piechart.WithLabelPosition(piechart.LabelCenter))
	}
	if s.Labels != nil {
		opts = append(opts, piechart.WithLabels(s.Labels))
	}
	if s.ShowLabels != nil && !*s.ShowLabels {
		opts = append(opts, piechart.WithoutLabels())
	}
	if s.Donut {
		opts = append(opts, piechart.WithDonut())
	}
	if s.DonutWidth != nil {
		opts = append(opts, piechart.WithDonutWidth(*s.DonutWidth))
	}
	if s.Total != nil {
		opts = append(opts, piechart.WithTotal(*s.Total))
	}
	if s.ShowRatio != nil {
		opts = append(opts, piechart.WithShowRatio(*s.ShowRatio))
	}
	return opts
}

// renderSVG assembles an SVG document from the layout, with the class
// names and middle-anchored labels the upstream chart widgets use.
func renderSVG(layout *piechart.Layout, spec chartSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="100%%" height="100%%" preserveAspectRatio="xMidYMid meet" class="dx-pie-chart">`,
		num(spec.ViewboxWidth), num(spec.ViewboxHeight))
	b.WriteByte('\n')

	for _, s := range layout.Slices {
		fmt.Fprintf(&b,
			"  <g class=\"dx-series dx-series-%d\"><path d=\"%s\" class=\"dx-slice\" fill=\"rgb(%s, 40, 40)\"/></g>\n",
			s.Index, s.Path.String(), num(s.ColorValue))
	}

	if len(layout.Labels) > 0 {
		b.WriteString("  <g>\n")
		for _, l := range layout.Labels {
			if l.Suppressed {
				continue
			}
			fmt.Fprintf(&b,
				"    <text dx=\"%s\" dy=\"%s\" text-anchor=\"middle\" class=\"dx-label\" alignment-baseline=\"middle\">%s</text>\n",
				num(l.At.X), num(l.At.Y), escapeXML(l.Text))
		}
		b.WriteString("  </g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// renderPNG rasterizes the slice paths. Arcs are flattened to cubic
// Béziers first; the rasterizer fills each flattened outline with the
// slice's palette color over a white background.
func renderPNG(layout *piechart.Layout, spec chartSpec, widthPx int) ([]byte, error) {
	if widthPx <= 0 || spec.ViewboxWidth <= 0 || spec.ViewboxHeight <= 0 {
		return nil, errors.New("non-positive raster dimensions")
	}
	scale := float64(widthPx) / spec.ViewboxWidth
	heightPx := int(spec.ViewboxHeight * scale)

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, s := range layout.Slices {
		r := vector.NewRasterizer(widthPx, heightPx)
		r.DrawOp = draw.Over
		rasterizePath(r, s.Path.Flatten(), scale)
		src := image.NewUniform(s.Fill.Color())
		r.Draw(img, img.Bounds(), src, image.Point{})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}

// rasterizePath feeds a flattened path into the rasterizer, scaling
// from view-box units to pixels.
func rasterizePath(r *vector.Rasterizer, p *piechart.Path, scale float64) {
	pt := func(q piechart.Point) (float32, float32) {
		return float32(q.X * scale), float32(q.Y * scale)
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case piechart.MoveTo:
			x, y := pt(e.Point)
			r.MoveTo(x, y)
		case piechart.LineTo:
			x, y := pt(e.Point)
			r.LineTo(x, y)
		case piechart.CubicTo:
			c1x, c1y := pt(e.Control1)
			c2x, c2y := pt(e.Control2)
			x, y := pt(e.Point)
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case piechart.Close:
			r.ClosePath()
		}
	}
}
