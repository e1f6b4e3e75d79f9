package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/luli-reader/icongen/pkg"
)

const version = "0.3.0"

var (
	outDir      string
	masterSize  int
	glyphName   string
	logLevel    string
	rootCmd     *cobra.Command
	versionFlag bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "icongen-master",
		Short: "Render Luli Reader master icon images",
		Long:  `Render Luli Reader master icon images`,
		Run:   renderMasters,
	}

	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Output directory for master images (defaults to assets/icon)")
	rootCmd.Flags().IntVar(&masterSize, "size", 0, "Master image size in pixels (defaults to 1024)")
	rootCmd.Flags().StringVarP(&glyphName, "glyph", "g", "", "Icon glyph to render (feed, classic, book; defaults to classic)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("icongen-master %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderMasters(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("icongen-master %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}

	pkg.RenderMastersWithLogLevel(outDir, masterSize, glyphName, logLevel)
}
