// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/internal/tui"
	"github.com/MKhiriev/go-totp-keeper/internal/workers"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// ErrCopyNeedsName is returned when --copy is used without naming the
// record whose code should land on the clipboard.
var ErrCopyNeedsName = errors.New("--copy requires --name to pick a record")

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Generate live codes from stored records",
	Long: `Generates the current TOTP codes for stored records. Without
--name, codes for every record in the file are printed.

With --watch, an interactive screen keeps the codes fresh until you quit;
--plain swaps the interactive screen for a periodic redraw of the plain
listing, which suits dumb terminals and multiplexer panes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		plain, _ := cmd.Flags().GetBool("plain")
		copyCode, _ := cmd.Flags().GetBool("copy")

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		records := file.Records
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")

			record, err := file.Get(name)
			if err != nil {
				return err
			}

			records = models.TotpRecordDict{name: record}
		} else if copyCode {
			return ErrCopyNeedsName
		}

		codes := service.NewCodeService(nil)

		if watch {
			return watchCodes(cmd.Context(), codes, records, plain)
		}

		if copyCode {
			for name, record := range records {
				code, err := codes.Generate(record)
				if err != nil {
					return err
				}

				if err := clipboard.WriteAll(code.Value); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}

				log.Debug().Str("name", name).Msg("code copied to clipboard")
				fmt.Printf("copied\nseconds left: %ds\n", code.SecondsLeft)
			}
			return nil
		}

		return printRecordsList(records, printTotpCode(codes))
	},
}

// watchCodes runs the live-code loop until the user quits or the process
// is signalled.
func watchCodes(ctx context.Context, codes *service.CodeService, records models.TotpRecordDict, plain bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !plain {
		return tui.NewWatch(codes, records, cfg.Watch.RefreshInterval).Run(ctx)
	}

	var loopErr error
	redraw := &workers.IntervalWorker{
		Interval: cfg.Watch.RefreshInterval,
		Log:      log,
		Fn: func(context.Context) error {
			// Clear the screen and park the cursor at the top left.
			fmt.Print("\x1b[2J\x1b[1;1H")

			loopErr = printRecordsList(records, printTotpCode(codes))
			return loopErr
		},
	}

	workers.New(redraw).Run(ctx)
	return loopErr
}

func init() {
	codesCmd.Flags().StringP("name", "n", "", "the name of a single record to generate a code for")
	codesCmd.Flags().BoolP("watch", "w", false, "keep generating codes until interrupted")
	codesCmd.Flags().Bool("plain", false, "redraw the plain listing instead of the interactive screen")
	codesCmd.Flags().BoolP("copy", "c", false, "copy the generated code to the clipboard")

	rootCmd.AddCommand(codesCmd)
}
