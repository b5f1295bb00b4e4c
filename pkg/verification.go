package pkg

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/danielrab/save-monger/pkg/logging"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

// VerifySaveWithLogger decodes a save file stage by stage, logging each
// completed stage. On failure the failing stage is logged and returned
// inside the error.
func VerifySaveWithLogger(savePath string, logger hclog.Logger) error {
	opts := format_v6.Options{
		OnStage: func(stage format_v6.Stage, consumed int) {
			logger.Info("✓ "+stage.String(), "consumed", consumed)
		},
	}

	reader, err := format_v6.NewReaderWithOptions(savePath, logger, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Debug("Failed to close reader", "error", err)
		}
	}()

	logger.Info("Verifying save file", "path", savePath)

	version, err := reader.ReadVersion()
	if err != nil {
		logger.Error("✗ Save verification failed", "stage", format_v6.StageVersionCheck.String(), "error", err)
		return err
	}
	logger.Debug("Container version", "version", version)

	circuit, err := reader.ReadCircuit()
	if err != nil {
		stage, ok := format_v6.FailedStage(err)
		if !ok {
			logger.Error("✗ Save verification failed", "error", err)
			return err
		}
		logger.Error("✗ Save verification failed", "stage", stage.String(), "error", err)
		return fmt.Errorf("verification failed at %s: %w", stage, err)
	}

	fileSize, payloadSize := reader.Sizes()
	logger.Info("✓ Save verification passed",
		"components", len(circuit.Components),
		"wires", len(circuit.Wires),
		"file_size", fileSize,
		"payload_size", payloadSize,
	)
	return nil
}

// VerifySave verifies a save file using default logger settings
func VerifySave(savePath string) error {
	logger := logging.NewLogger("save-verify", logging.GetLogLevel(), nil)
	return VerifySaveWithLogger(savePath, logger)
}
