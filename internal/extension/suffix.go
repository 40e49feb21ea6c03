package extension

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DetectSuffix asks the interpreter for the platform extension suffix, e.g.
// ".cpython-312-x86_64-linux-gnu.so". The artifact file name is always the
// module name plus this suffix.
func DetectSuffix(ctx context.Context, python string) (string, error) {
	cmd := exec.CommandContext(ctx, python, "-c",
		"import sysconfig; print(sysconfig.get_config_var('EXT_SUFFIX'))")

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("query extension suffix from %s: %w", python, err)
	}

	suffix := strings.TrimSpace(string(out))
	if suffix == "" || suffix == "None" {
		return "", fmt.Errorf("interpreter %s reported no extension suffix", python)
	}
	if !strings.HasPrefix(suffix, ".") {
		return "", fmt.Errorf("unexpected extension suffix %q", suffix)
	}
	return suffix, nil
}
