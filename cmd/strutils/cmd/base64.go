package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/core/log"
	"github.com/Wosser1sProductions/utils/utils/stringx"
)

var (
	base64Files []string
	base64Jobs  int
)

var base64Cmd = &cobra.Command{
	Use:   "base64",
	Short: "Base64 encode, decode and check",
	Long: `Encodes, decodes and checks standard base64 with '=' padding.

Input is the arguments, stdin, or one or more --file paths. Files are
processed concurrently, at most --jobs at a time, and reported in the
order given.

Config: [base64] jobs`,
}

var base64EncodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text or files",
	Example: `  strutils base64 encode Hello
  strutils base64 encode --file a.bin --file b.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBase64(cmd, args, encodeBase64)
	},
}

var base64DecodeCmd = &cobra.Command{
	Use:     "decode [text]",
	Short:   "Decode base64 text or files",
	Example: `  strutils base64 decode SGVsbG8=`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBase64(cmd, args, decodeBase64)
	},
}

var base64CheckCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Report whether the input is valid base64",
	Long: `Prints "valid" or "invalid" for each input and fails when any input
is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBase64(cmd, args, checkBase64)
	},
}

func init() {
	rootCmd.AddCommand(base64Cmd)
	base64Cmd.AddCommand(base64EncodeCmd)
	base64Cmd.AddCommand(base64DecodeCmd)
	base64Cmd.AddCommand(base64CheckCmd)

	base64Cmd.PersistentFlags().StringArrayVarP(&base64Files, "file", "f", nil, "input file (repeatable)")
	base64Cmd.PersistentFlags().IntVarP(&base64Jobs, "jobs", "j", 4, "files processed concurrently")
}

// base64Op turns one input into its output line. A non-nil error fails the
// whole command.
type base64Op func(data []byte) (string, error)

func encodeBase64(data []byte) (string, error) {
	return stringx.Base64Encode(data), nil
}

func decodeBase64(data []byte) (string, error) {
	out, err := stringx.Base64Decode([]byte(stringx.TrimRight(string(data))))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func checkBase64(data []byte) (string, error) {
	if stringx.IsBase64(stringx.TrimRight(string(data))) {
		return "valid", nil
	}
	return "invalid", nil
}

func runBase64(cmd *cobra.Command, args []string, op base64Op) error {
	if len(base64Files) == 0 {
		text, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		line, err := op([]byte(text))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
		if line == "invalid" && cmd.Name() == "check" {
			return errors.InvalidInput(errors.ModuleCLI, "base64_check", text, "valid base64")
		}
		return nil
	}

	jobs := base64Jobs
	if !cmd.Flags().Changed("jobs") {
		jobs = cfg.GetInt("base64.jobs", base64Jobs)
	}
	if jobs < 1 {
		return errors.InvalidInput(errors.ModuleCLI, "jobs", jobs, "a positive number")
	}

	operation := "base64 " + cmd.Name()
	timer := logger.StartTimer(operation).
		WithField("files", len(base64Files)).
		WithField("jobs", jobs)

	lines, err := processFiles(cmd.Context(), base64Files, jobs, op)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	invalid := 0
	for i, line := range lines {
		if line == "invalid" {
			invalid++
		}
		if len(lines) > 1 {
			line = base64Files[i] + ": " + line
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}

	if invalid > 0 && cmd.Name() == "check" {
		return errors.InvalidInput(errors.ModuleCLI, "base64_check", fmt.Sprintf("%d of %d files", invalid, len(lines)), "valid base64")
	}
	return nil
}

// processFiles applies op to every file with at most jobs running at once.
// Results keep the order of paths. The first failure cancels the rest.
func processFiles(ctx context.Context, paths []string, jobs int, op base64Op) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]string, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.InvalidInput(errors.ModuleCLI, "read_file", path, "a readable file")
			}
			line, err := op(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Trace("file processed", log.String("path", path), log.Int("bytes", len(data)))
			results[i] = line
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
