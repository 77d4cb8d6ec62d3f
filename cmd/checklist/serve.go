package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the checklist form over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8501", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	log := currentLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving checklist",
		zap.String("variant", string(opts.Variant)),
		zap.String("template", opts.Template),
		zap.String("output_dir", opts.OutputDir))

	srv := server.New(addr, checklist.NewSource(opts), checklist.NewGenerator(opts, log), log)
	return srv.ListenAndServe(ctx)
}
