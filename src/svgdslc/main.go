// Command svgdslc compiles svgdsl source from the command line, either to
// a standalone SVG document or to its annotated-trace form.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svgdsl/svgdsl"
)

var version = "dev"

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("compile failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inline        string
		srcPath       string
		output        string
		outputSVGFile string
		viewBox       string
		width         string
		height        string
		stroke        string
		fill          string
		strokeWidth   string
		annotated     bool
		preset        string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:     "svgdslc",
		Short:   "Compile svgdsl source into SVG",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			source, err := readSource(inline, srcPath)
			if err != nil {
				return err
			}

			opts := svgdsl.CompileOptions{}

			if annotated {
				out, err := svgdsl.CompileAnnotated(source, opts)
				if err != nil {
					return err
				}
				return writeOutput(output, out)
			}

			result, err := svgdsl.Compile(source, opts)
			if err != nil {
				return err
			}
			log.WithField("layers", len(result.Layers)).Debug("compiled")

			ropts := renderOpts{ViewBox: viewBox, Width: width, Height: height, Stroke: stroke, Fill: fill, StrokeWidth: strokeWidth}
			if preset != "" {
				if err := applyPreset(preset, &ropts); err != nil {
					return err
				}
			}

			if outputSVGFile != "" {
				if err := os.WriteFile(outputSVGFile, []byte(renderSVG(result, ropts)), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outputSVGFile, err)
				}
				log.WithField("file", outputSVGFile).Info("wrote SVG")
			}
			if output != "" {
				return writeOutput(output, result.Path)
			}
			if outputSVGFile == "" {
				fmt.Println(result.Path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inline, "expr", "e", "", "compile inline svgdsl source")
	flags.StringVar(&srcPath, "src", "", "path to an svgdsl source file")
	flags.StringVarP(&output, "output", "o", "", "write the default layer's path data (or annotated trace) to this file")
	flags.StringVar(&outputSVGFile, "output-svg-file", "", "write a standalone SVG document to this file")
	flags.StringVar(&viewBox, "viewBox", "", "SVG viewBox attribute")
	flags.StringVar(&width, "width", "", "SVG width attribute")
	flags.StringVar(&height, "height", "", "SVG height attribute")
	flags.StringVar(&stroke, "stroke", "", "default stroke for path layers without an explicit style")
	flags.StringVar(&fill, "fill", "", "default fill for path layers without an explicit style")
	flags.StringVar(&strokeWidth, "stroke-width", "", "default stroke-width for path layers without an explicit style")
	flags.BoolVar(&annotated, "annotated", false, "emit the annotated compilation trace instead of SVG")
	flags.StringVar(&preset, "preset", "", "style preset name, looked up in .svgdslrc.yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func readSource(inline, srcPath string) (string, error) {
	switch {
	case inline != "":
		return inline, nil
	case srcPath != "":
		data, err := os.ReadFile(srcPath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", srcPath, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("one of -e or --src is required")
	}
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// applyPreset loads .svgdslrc.yaml from the working directory and fills
// in any of ropts' stroke/fill/strokeWidth fields left blank by explicit
// flags.
func applyPreset(name string, ropts *renderOpts) error {
	presets, found, err := loadPresets(".svgdslrc.yaml")
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("--preset %q requested but .svgdslrc.yaml was not found", name)
	}
	p, err := presets.resolve(name)
	if err != nil {
		return err
	}
	if ropts.Stroke == "" {
		ropts.Stroke = p.Stroke
	}
	if ropts.Fill == "" {
		ropts.Fill = p.Fill
	}
	if ropts.StrokeWidth == "" {
		ropts.StrokeWidth = p.StrokeWidth
	}
	return nil
}
