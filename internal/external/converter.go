// Package external runs the downstream CSV-to-OSCAL conversion tool as a
// subprocess. The conversion itself stays outside this repo; we only locate
// the tool, gate on a minimum version, and relay its output.
package external

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// versionPattern pulls the first dotted version out of a tool's version
// banner, e.g. "Compliance Trestle version v3.5.0" or "trestle 3.5.0".
var versionPattern = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)

// DefaultTask is the trestle task that turns a crosswalk CSV into an OSCAL
// mapping collection, populating source-gap-summary from empty-target rows.
const DefaultTask = "csv-to-oscal-mc"

// Converter invokes an external mapping-conversion command.
type Converter struct {
	// Command is the executable name or path (e.g. "trestle").
	Command string
	// Task is the conversion subcommand; empty means DefaultTask.
	Task string
	// MinVersion gates execution when non-empty (e.g. "3.2.0").
	MinVersion string
}

// Available reports whether the command can be found on PATH.
func (c *Converter) Available() bool {
	_, err := exec.LookPath(c.Command)
	return err == nil
}

// Version runs `<command> version` and extracts the reported version.
func (c *Converter) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.Command, "version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to run %s version: %w", c.Command, err)
	}
	v := ParseVersion(string(out))
	if v == "" {
		return "", fmt.Errorf("no version found in %s output: %q", c.Command, strings.TrimSpace(string(out)))
	}
	return v, nil
}

// CheckVersion verifies the tool meets MinVersion. A zero MinVersion always
// passes.
func (c *Converter) CheckVersion(ctx context.Context) error {
	if c.MinVersion == "" {
		return nil
	}
	got, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if semver.Compare(canonical(got), canonical(c.MinVersion)) < 0 {
		return fmt.Errorf("%s version %s is below required %s", c.Command, got, c.MinVersion)
	}
	return nil
}

// Convert runs the conversion subcommand against a crosswalk CSV, producing
// an OSCAL mapping collection under outputDir. Tool stdout/stderr are
// returned for relay to the user.
func (c *Converter) Convert(ctx context.Context, csvPath, outputDir string) (string, error) {
	if err := c.CheckVersion(ctx); err != nil {
		return "", err
	}
	task := c.Task
	if task == "" {
		task = DefaultTask
	}
	cmd := exec.CommandContext(ctx, c.Command, "task", task,
		"-c", csvPath, "-o", outputDir)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("conversion failed: %w", err)
	}
	return out.String(), nil
}

// ParseVersion extracts the first version number from a tool banner, or ""
// when none is present.
func ParseVersion(banner string) string {
	m := versionPattern.FindStringSubmatch(banner)
	if m == nil {
		return ""
	}
	return m[1]
}

// canonical pads a version to semver form with a leading v so
// semver.Compare accepts it.
func canonical(v string) string {
	v = "v" + strings.TrimPrefix(v, "v")
	if strings.Count(v, ".") == 1 {
		v += ".0"
	}
	return v
}
