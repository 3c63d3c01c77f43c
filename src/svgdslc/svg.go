package main

import (
	"fmt"
	"strings"

	"github.com/svgdsl/svgdsl"
)

// renderOpts carries the presentation attributes applied to every
// PathLayer's <path> element in the rendered SVG document.
type renderOpts struct {
	ViewBox     string
	Width       string
	Height      string
	Stroke      string
	Fill        string
	StrokeWidth string
}

// renderSVG assembles a standalone SVG document from a CompileResult: one
// <path> per PathLayer, one <text> (with nested <tspan>s) per TextLayer
// child element.
func renderSVG(result svgdsl.CompileResult, opts renderOpts) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg"`)
	if opts.ViewBox != "" {
		fmt.Fprintf(&b, ` viewBox="%s"`, opts.ViewBox)
	}
	if opts.Width != "" {
		fmt.Fprintf(&b, ` width="%s"`, opts.Width)
	}
	if opts.Height != "" {
		fmt.Fprintf(&b, ` height="%s"`, opts.Height)
	}
	b.WriteString(">\n")

	for _, layer := range result.Layers {
		if layer.IsText {
			renderTextLayer(&b, layer)
			continue
		}
		renderPathLayer(&b, layer, opts)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func renderPathLayer(b *strings.Builder, layer svgdsl.Layer, opts renderOpts) {
	if layer.Data == "" {
		return
	}
	stroke := firstNonEmpty(layer.Styles["stroke"], opts.Stroke, "black")
	fill := firstNonEmpty(layer.Styles["fill"], opts.Fill, "none")
	strokeWidth := firstNonEmpty(layer.Styles["stroke-width"], opts.StrokeWidth, "1")
	fmt.Fprintf(b, `  <path d="%s" stroke="%s" fill="%s" stroke-width="%s"/>`+"\n",
		xmlEscape(layer.Data), xmlEscape(stroke), xmlEscape(fill), xmlEscape(strokeWidth))
}

func renderTextLayer(b *strings.Builder, layer svgdsl.Layer) {
	for _, el := range layer.TextElements {
		b.WriteString("  <text")
		fmt.Fprintf(b, ` x="%g" y="%g"`, el.X, el.Y)
		if el.Rotation != nil {
			fmt.Fprintf(b, ` rotation="%g"`, *el.Rotation)
		}
		writeStyleAttr(b, el.Styles)
		b.WriteString(">")
		for _, child := range el.Children {
			if child.IsTspan {
				b.WriteString("<tspan")
				if child.DX != nil {
					fmt.Fprintf(b, ` dx="%g"`, *child.DX)
				}
				if child.DY != nil {
					fmt.Fprintf(b, ` dy="%g"`, *child.DY)
				}
				if child.Rotation != nil {
					fmt.Fprintf(b, ` rotation="%g"`, *child.Rotation)
				}
				writeStyleAttr(b, child.Styles)
				fmt.Fprintf(b, ">%s</tspan>", xmlEscape(child.Text))
				continue
			}
			b.WriteString(xmlEscape(child.Text))
		}
		b.WriteString("</text>\n")
	}
}

func writeStyleAttr(b *strings.Builder, styles map[string]string) {
	if len(styles) == 0 {
		return
	}
	var parts []string
	for k, v := range styles {
		parts = append(parts, k+": "+v)
	}
	fmt.Fprintf(b, ` style="%s"`, xmlEscape(strings.Join(parts, "; ")))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
