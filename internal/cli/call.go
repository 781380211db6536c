package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/rpcdispatch/internal/control"
	"github.com/vietddude/rpcdispatch/internal/core/domain"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc"
)

var (
	callDC      int
	callParams  string
	callQueue   string
	callWait    time.Duration
	callTimeout time.Duration
)

var callCmd = &cobra.Command{
	Use:   "call [method]",
	Short: "Send one call through the dispatcher and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runCall,
}

func init() {
	callCmd.Flags().IntVar(&callDC, "dc", 2, "target datacenter")
	callCmd.Flags().StringVar(&callParams, "params", "", "JSON encoded parameters")
	callCmd.Flags().StringVar(&callQueue, "queue", "", "ordering queue key")
	callCmd.Flags().DurationVar(&callWait, "tolerated-wait", 0, "longest flood wait to sleep through (0 uses the config)")
	callCmd.Flags().DurationVar(&callTimeout, "timeout", time.Minute, "overall deadline")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Datacenters) == 0 {
		return fmt.Errorf("no datacenters configured in %s", cfgPath)
	}

	var params any
	if callParams != "" {
		var raw json.RawMessage
		if err := json.Unmarshal([]byte(callParams), &raw); err != nil {
			return fmt.Errorf("invalid --params: %w", err)
		}
		params = raw
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	app, err := control.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	opts := []rpc.CallOption{rpc.WithQueue(callQueue)}
	if callWait > 0 {
		opts = append(opts, rpc.WithToleratedWait(callWait))
	}
	res, err := app.Dispatcher().Call(ctx, args[0], params, domain.DatacenterID(callDC), opts...)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
