package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/ehsanranjbar/objwalk"
	"github.com/ehsanranjbar/objwalk/batch"
)

var (
	excludePatterns  []string
	includePatterns  []string
	valuePatterns    []string
	maxDepth         int
	keepDefaultProps bool
	rootName         string
	inputFormat      string
	outputFormat     string
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "objwalk [file...]",
	Short: "Flatten nested documents into path = value mappings",
	Long: `objwalk reads one or more JSON, YAML or msgpack documents (from files
or stdin) and flattens each into a single-level mapping of dotted paths
to leaf values. Glob patterns filter by field name or value, and a depth
limit keeps self-referential structures in check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.NewNop()
		if verbose {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()
		}

		roots, names, err := readInputs(args)
		if err != nil {
			return err
		}

		opts := []objwalk.Option{
			objwalk.WithMaxDepth(maxDepth),
			objwalk.WithRootName(rootName),
			objwalk.WithLogger(logger),
		}
		if len(excludePatterns) > 0 {
			opts = append(opts, objwalk.WithExclude(excludePatterns...))
		}
		if len(includePatterns) > 0 {
			opts = append(opts, objwalk.WithInclude(includePatterns...))
		}
		if len(valuePatterns) > 0 {
			opts = append(opts, objwalk.WithValueFilter(valuePatterns...))
		}
		if keepDefaultProps {
			opts = append(opts, objwalk.WithoutDefaultExclusion())
		}

		runs, err := batch.New(opts...).Run(roots...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, run := range runs {
			if len(runs) > 1 {
				fmt.Fprintf(out, "# %s\n", names[i])
			}
			if verbose {
				logger.Info("flattened document",
					zap.String("input", names[i]),
					zap.String("run", run.ID.String()),
					zap.Int("entries", run.Result.Len()))
			}
			if err := writeResult(out, run.Result); err != nil {
				return err
			}
		}
		return nil
	},
}

func readInputs(args []string) (roots []any, names []string, err error) {
	if len(args) == 0 {
		v, err := decode(os.Stdin, inputFormat)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []any{v}, []string{"stdin"}, nil
	}

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}

		format := inputFormat
		if format == "auto" {
			format = formatByExtension(path)
		}
		v, err := decode(f, format)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		roots = append(roots, v)
		names = append(names, path)
	}
	return roots, names, nil
}

func formatByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".msgpack", ".mp":
		return "msgpack"
	default:
		return "json"
	}
}

func decode(r io.Reader, format string) (any, error) {
	var v any
	switch format {
	case "yaml":
		err := yaml.NewDecoder(r).Decode(&v)
		return v, err
	case "msgpack":
		err := msgpack.NewDecoder(r).Decode(&v)
		return v, err
	case "json", "auto":
		err := json.NewDecoder(r).Decode(&v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func writeResult(w io.Writer, res *objwalk.Result) error {
	switch outputFormat {
	case "json":
		bz, err := res.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	case "yaml":
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for k, v := range res.Iter() {
			var vn yaml.Node
			if err := vn.Encode(v); err != nil {
				return err
			}
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				&vn,
			)
		}
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(doc)
	case "text":
		for k, v := range res.Iter() {
			if _, err := fmt.Fprintf(w, "%s = %v\n", k, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func init() {
	rootCmd.Flags().StringSliceVarP(&excludePatterns, "exclude", "e", nil, "Glob patterns of field names to drop at every level")
	rootCmd.Flags().StringSliceVarP(&includePatterns, "include", "i", nil, "Glob patterns a field name must match to be emitted")
	rootCmd.Flags().StringSliceVar(&valuePatterns, "value", nil, "Glob patterns the value's string form must match to be emitted")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", objwalk.DefaultMaxDepth, "Recursion depth ceiling")
	rootCmd.Flags().BoolVar(&keepDefaultProps, "keep-default-props", false, "Do not exclude fields registered as intrinsic to their type")
	rootCmd.Flags().StringVar(&rootName, "root", objwalk.DefaultRootName, "Path prefix of emitted entries")
	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "auto", "Input format: auto, json, yaml or msgpack")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-node diagnostics and run summaries")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
