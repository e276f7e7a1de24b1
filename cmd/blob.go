package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"blob-integration/core/config"
	"blob-integration/core/container"
	"blob-integration/core/logger"
	"blob-integration/core/storage"
	"blob-integration/core/storage/providers"
	"blob-integration/feature/blob"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var blobFile string

// storageResolver builds the credential resolver used by the blob commands.
var storageResolver = func(cfg storage.Config, logg *zap.Logger) storage.Resolver {
	return providers.NewResolver(cfg, logg).Func()
}

// blobCmd is the parent command for direct blob operations.
var blobCmd = &cobra.Command{
	Use:   "blob",
	Short: "Save and read blobs without starting the server",
}

// blobSaveCmd uploads text from a file or stdin.
var blobSaveCmd = &cobra.Command{
	Use:   "save <container> <blob>",
	Short: "Save text to a blob (reads stdin unless --file is set)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if blobFile != "" {
			f, err := os.Open(blobFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", blobFile, err)
			}
			defer f.Close()
			in = f
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		content := string(data)
		if strings.TrimSpace(content) == "" {
			return blob.ErrEmptyContent
		}

		mgr, logg, err := initManager(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := mgr.Save(cmd.Context(), args[1], content); err != nil {
			return fmt.Errorf("failed to save blob: %w", err)
		}

		logg.Info("Blob saved", zap.String("container", args[0]), zap.String("blob", args[1]), zap.Int("size", len(content)))
		return nil
	},
}

// blobReadCmd prints a blob to stdout.
var blobReadCmd = &cobra.Command{
	Use:   "read <container> <blob>",
	Short: "Print the content of a blob",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := initManager(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		content, err := mgr.Read(cmd.Context(), args[1])
		if err != nil {
			return fmt.Errorf("failed to read blob: %w", err)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	blobSaveCmd.Flags().StringVarP(&blobFile, "file", "f", "", "Read content from this file instead of stdin")
	blobCmd.AddCommand(blobSaveCmd, blobReadCmd)
	RootCmd.AddCommand(blobCmd)
}

// initManager loads configuration and returns a manager initialized for containerName.
func initManager(ctx context.Context, containerName string) (*container.Manager, *zap.Logger, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	mgr, err := container.New(cfg.Storage.ConnectionString,
		container.WithResolver(storageResolver(cfg.Storage, logg.Named("storage"))),
		container.WithLogger(logg),
	)
	if err != nil {
		return nil, nil, err
	}

	if err := mgr.Initialize(ctx, containerName); err != nil {
		return nil, nil, err
	}
	return mgr, logg, nil
}
