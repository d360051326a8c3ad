package prompt

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// EstimateTokens estimates the token count of a document using the rule of
// thumb of ~4 characters per token, rounded up.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

// WriteDocument emits the finished document to the configured output file,
// or to out when no path was configured, and reports size and token
// diagnostics on the logger.
func WriteDocument(document, outputPath string, out io.Writer, logger *zap.Logger) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(document), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
		}
		logger.Info("Wrote prompt document", zap.String("output", outputPath))
	} else {
		if _, err := fmt.Fprint(out, document); err != nil {
			return fmt.Errorf("failed to write document to output stream: %w", err)
		}
	}

	logger.Info("Prompt diagnostics",
		zap.String("sizeKB", fmt.Sprintf("%.2f", float64(len(document))/1024)),
		zap.Int("estimatedTokens", EstimateTokens(document)))
	return nil
}
