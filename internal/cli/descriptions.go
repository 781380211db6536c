package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vietddude/rpcdispatch/internal/core/config"
	redisclient "github.com/vietddude/rpcdispatch/internal/infra/redis"
	"github.com/vietddude/rpcdispatch/internal/infra/rpc/taxonomy"
	"github.com/vietddude/rpcdispatch/internal/infra/storage/postgres"
)

var descriptionsCmd = &cobra.Command{
	Use:   "descriptions",
	Short: "List error descriptions learned from the lookup service",
	Args:  cobra.NoArgs,
	RunE:  runDescriptions,
}

var learnCmd = &cobra.Command{
	Use:   "learn [identifier] [description]",
	Short: "Store a description for an identifier missing from the catalogue",
	Args:  cobra.ExactArgs(2),
	RunE:  runLearn,
}

var descriptionsTier string

func init() {
	descriptionsCmd.Flags().StringVar(&descriptionsTier, "tier", "", "store to list: postgres or redis (default: postgres when configured)")
	rootCmd.AddCommand(descriptionsCmd)
	rootCmd.AddCommand(learnCmd)
}

func openDB(cmd *cobra.Command) (*postgres.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is not configured")
	}

	ctx := context.Background()
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runDescriptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rows, err := listDescriptions(context.Background(), cfg, descriptionsTier)
	if err != nil {
		return err
	}
	return printDescriptions(cmd.OutOrStdout(), rows)
}

// listDescriptions reads the learned descriptions of one store tier. An empty
// tier picks PostgreSQL when configured, Redis otherwise.
func listDescriptions(ctx context.Context, cfg *config.AppConfig, tier string) ([]postgres.Description, error) {
	if tier == "" {
		tier = "redis"
		if cfg.Database.URL != "" {
			tier = "postgres"
		}
	}

	switch tier {
	case "postgres":
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("database.url is not configured")
		}
		db, err := postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = db.Close()
		}()
		if err := db.Migrate(ctx); err != nil {
			return nil, err
		}
		return postgres.NewDescriptionRepo(db).List(ctx)

	case "redis":
		if cfg.Redis.URL == "" {
			return nil, fmt.Errorf("redis.url is not configured")
		}
		client, err := redisclient.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = client.Close()
		}()
		list, err := redisclient.NewDescriptionStore(client).List(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]postgres.Description, len(list))
		for i, d := range list {
			rows[i] = postgres.Description{Identifier: d.Identifier, Description: d.Description, Hits: d.Hits}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unknown tier %q (want postgres or redis)", tier)
}

func printDescriptions(out io.Writer, rows []postgres.Description) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "IDENTIFIER\tHITS\tDESCRIPTION")
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", r.Identifier, r.Hits, r.Description)
	}
	return w.Flush()
}

func runLearn(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	tax := taxonomy.New(postgres.NewDescriptionRepo(db))
	id := taxonomy.Normalize(args[0])
	if err := tax.Remember(context.Background(), id, args[1]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored description for %s\n", id)
	return nil
}
