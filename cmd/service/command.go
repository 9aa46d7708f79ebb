package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/postpilot-ai/postpilot/app/core"
	v1 "github.com/postpilot-ai/postpilot/app/logic/v1"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "post generation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	if err := app.Install(context.Background()); err != nil {
		return err
	}
	serve(app)

	return nil
}

// NewReindexCommand rebuilds the vector corpus from the markdown sources and
// exits. Run after editing any knowledge document.
func NewReindexCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "rebuild the knowledge corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			if err := app.Install(ctx); err != nil {
				return err
			}

			result, err := v1.NewKnowledgeLogic(ctx, app).Reindex()
			if err != nil {
				return err
			}

			fmt.Printf("reindexed %d chunks with model %s\n", result.Indexed, result.Model)
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func NewStatsCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print knowledge corpus stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

			stats, err := v1.NewKnowledgeLogic(ctx, app).Stats()
			if err != nil {
				return err
			}

			raw, _ := json.Marshal(stats)
			fmt.Println(string(raw))
			return nil
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}
