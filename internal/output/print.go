package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// Error prints a formatted error line to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// Success prints a formatted confirmation line with a leading check mark.
func Success(format string, args ...any) {
	fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...)) // ✓
}

// JSON writes v to stdout as indented JSON.
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
