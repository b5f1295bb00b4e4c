package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"

	"github.com/danielrab/save-monger/internal/savedir"
	"github.com/danielrab/save-monger/pkg"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

func runHeader(cmd *cobra.Command, args []string) error {
	circuit, err := pkg.DecodeFileWithOptions(args[0], logger, decodeOptions(cmd))
	if err != nil {
		return err
	}
	printHeader(cmd.OutOrStdout(), &circuit.Header)
	return nil
}

func printHeader(w io.Writer, h *format_v6.Header) {
	fmt.Fprintf(w, "save_id:         %d\n", h.SaveID)
	fmt.Fprintf(w, "hub_id:          %d\n", h.HubID)
	fmt.Fprintf(w, "gate:            %d\n", h.Gate)
	fmt.Fprintf(w, "delay:           %d\n", h.Delay)
	fmt.Fprintf(w, "menu_visible:    %t\n", h.MenuVisible)
	fmt.Fprintf(w, "clock_speed:     %d\n", h.ClockSpeed)
	fmt.Fprintf(w, "dependencies:    %v\n", h.Dependencies)
	fmt.Fprintf(w, "description:     %q\n", h.Description)
	fmt.Fprintf(w, "camera_position: %s\n", h.CameraPosition)
	fmt.Fprintf(w, "synced:          %s\n", h.Synced)
	fmt.Fprintf(w, "campaign_bound:  %t\n", h.CampaignBound)
	fmt.Fprintf(w, "arch_score:      %d\n", h.ArchScore)
	fmt.Fprintf(w, "player_data:     %d bytes\n", len(h.PlayerData))
	fmt.Fprintf(w, "hub_description: %q\n", h.HubDescription)
}

func runInfo(cmd *cobra.Command, args []string) error {
	reader, err := format_v6.NewReaderWithOptions(args[0], logger, decodeOptions(cmd))
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Debug("Failed to close reader", "error", err)
		}
	}()

	payload, err := reader.ReadPayload()
	if err != nil {
		return err
	}
	circuit, err := reader.ReadCircuit()
	if err != nil {
		return err
	}
	fileSize, payloadSize := reader.Sizes()
	digest := blake3.Sum256(payload)
	stats := circuit.Stats()

	w := cmd.OutOrStdout()
	printHeader(w, &circuit.Header)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "file_size:       %s\n", humanize.Bytes(uint64(fileSize)))
	fmt.Fprintf(w, "payload_size:    %s\n", humanize.Bytes(uint64(payloadSize)))
	fmt.Fprintf(w, "payload_blake3:  %s\n", hex.EncodeToString(digest[:]))
	fmt.Fprintf(w, "components:      %s\n", humanize.Comma(int64(stats.Components)))
	for _, v := range []format_v6.Variant{format_v6.VariantNormal, format_v6.VariantCustom, format_v6.VariantProgram} {
		fmt.Fprintf(w, "  %-14s %d\n", v.String()+":", stats.ByVariant[v])
	}
	fmt.Fprintf(w, "program_slots:   %d\n", stats.ProgramSlots)
	fmt.Fprintf(w, "wires:           %s\n", humanize.Comma(int64(stats.Wires)))
	kinds := make([]format_v6.WireKind, 0, len(stats.ByWireKind))
	for k := range stats.ByWireKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-14s %d\n", k.String()+":", stats.ByWireKind[k])
	}
	fmt.Fprintf(w, "path_vertices:   %s\n", humanize.Comma(int64(stats.Vertices)))
	fmt.Fprintf(w, "longest_path:    %d\n", stats.LongestPath)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := pkg.VerifySaveWithLogger(args[0], logger); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", args[0])
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName := exportFormat
	if formatName == "" {
		formatName = cfg.Export.Format
	}
	chain := exportChain
	if chain == "" {
		chain = cfg.Export.Compression
	}

	result, err := pkg.ExportFile(args[0], formatName, chain, logger, decodeOptions(cmd))
	if err != nil {
		return err
	}

	if outputPath == "-" {
		_, err := cmd.OutOrStdout().Write(result.Data)
		return err
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + result.Extension
	}
	if err := os.WriteFile(out, result.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logger.Info("Wrote export", "path", out, "size", humanize.Bytes(uint64(len(result.Data))))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	dir := cfg.SavesDir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		dir = savedir.Root()
	}
	logger.Debug("Searching for saves", "dir", dir)

	entries, err := savedir.Find(dir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		status := "ok"
		if v, err := savedir.PeekVersion(e.Path); err != nil {
			status = "unreadable"
		} else if v != format_v6.SaveVersion {
			status = fmt.Sprintf("version %d", v)
		}
		rel, err := filepath.Rel(dir, filepath.Dir(e.Path))
		if err != nil {
			rel = e.Path
		}
		fmt.Fprintf(w, "%-48s %9s  %-16s %s\n", rel, humanize.Bytes(uint64(e.Size)), humanize.Time(e.ModTime), status)
	}
	logger.Info("Found saves", "dir", dir, "count", len(entries))
	return nil
}
