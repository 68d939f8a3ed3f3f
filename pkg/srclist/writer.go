package srclist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Render writes the list block: a "set(<variable> " header line, one
// tab-indented path per line, and a closing ")" with no trailing newline.
// Paths are written verbatim.
func Render(w io.Writer, variable string, paths []string) error {
	if _, err := io.WriteString(w, "set("+variable+" "+LineEnding); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range paths {
		if _, err := io.WriteString(w, "\t"+p+LineEnding); err != nil {
			return fmt.Errorf("failed to write path %s: %w", p, err)
		}
	}
	if _, err := io.WriteString(w, ")"); err != nil {
		return fmt.Errorf("failed to write closing delimiter: %w", err)
	}
	return nil
}

// WriteListFile creates or truncates outputPath and renders paths into it.
// The file is closed on every return path. A partially written file is left
// in place on failure.
func WriteListFile(outputPath, variable string, paths []string, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing source list", zap.String("file", outputPath), zap.Int("paths", len(paths)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if err := Render(writer, variable, paths); err != nil {
		logger.Error("Failed to render source list", zap.String("file", outputPath), zap.Error(err))
		return err
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
