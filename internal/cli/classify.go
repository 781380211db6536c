package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/classify"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/lookup"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/server"
)

var (
	classifyCode   int
	classifyMethod string
	classifyLookup bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [identifier]",
	Short: "Classify an error identifier returned by the service",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().IntVar(&classifyCode, "code", 400, "error code returned with the identifier")
	classifyCmd.Flags().StringVar(&classifyMethod, "method", "help.getConfig", "method that raised the error")
	classifyCmd.Flags().BoolVar(&classifyLookup, "lookup", false, "describe unknown identifiers with the lookup service")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var lk classify.Lookuper
	if classifyLookup {
		client := lookup.NewClient(cfg.Dispatch.Lookup.URL, cfg.Dispatch.Lookup.Timeout)
		defer client.Close()
		lk = client
	}
	c := classify.New(taxonomy.New(nil), lk, classify.Config{LookupTimeout: cfg.Dispatch.Lookup.Timeout})

	raw := domain.RawError{Code: classifyCode, Identifier: args[0], Method: classifyMethod}
	return printClassification(cmd.OutOrStdout(), server.Describe(c.Classify(context.Background(), raw)))
}

func printClassification(out io.Writer, c server.Classification) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "KIND\t%s\n", c.Kind)
	_, _ = fmt.Fprintf(w, "ERROR\t%s (%d) in %s\n", c.Identifier, c.Code, c.Method)
	_, _ = fmt.Fprintf(w, "DESCRIPTION\t%s\n", c.Description)
	if c.Variant != "" {
		_, _ = fmt.Fprintf(w, "VARIANT\t%s\n", c.Variant)
	}
	if c.WaitSeconds > 0 {
		_, _ = fmt.Fprintf(w, "WAIT\t%ds\n", c.WaitSeconds)
	}
	if c.Datacenter > 0 {
		_, _ = fmt.Fprintf(w, "DATACENTER\t%d\n", c.Datacenter)
	}
	_, _ = fmt.Fprintf(w, "GRPC\t%s\n", c.GRPCCode)
	return w.Flush()
}
